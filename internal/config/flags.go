package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a HTTP facade address in format [host]:[port]
//	-c/-config config file path (.json, .toml, .yaml, .yml)
//	-rpc-url ledger JSON-RPC endpoint
//	-contract records contract address
//	-chain-id ledger chain id
//	-private-key hex signing key
//	-signer-url remote signer base URL
//	-account wallet address signed for by the remote signer
//	-relayer relayer base URL
//	-relayer-rate relayer requests per second
//	-request-timeout relayer request timeout (e.g., "30s", "1m")
//	-refresh-interval background cache refresh period (e.g., "1m")
//	-log-file rotated log file path
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var configPath string
	var rpcURL, contractAddress string
	var chainID int64
	var privateKey, signerURL, account string
	var relayerAddress string
	var relayerRate float64
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.StringVar(&rpcURL, "rpc-url", "", "Ledger JSON-RPC endpoint")
	flag.StringVar(&contractAddress, "contract", "", "Records contract address")
	flag.Int64Var(&chainID, "chain-id", 0, "Ledger chain id")
	flag.StringVar(&privateKey, "private-key", "", "Hex signing key")
	flag.StringVar(&signerURL, "signer-url", "", "Remote signer base URL")
	flag.StringVar(&account, "account", "", "Remote signer wallet address")
	flag.StringVar(&relayerAddress, "relayer", "", "Relayer base URL")
	flag.Float64Var(&relayerRate, "relayer-rate", 0, "Relayer requests per second")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Relayer request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Record cache refresh period (e.g., 1m)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Ledger: Ledger{
			RPCURL:          rpcURL,
			ContractAddress: contractAddress,
			ChainID:         chainID,
			PrivateKey:      privateKey,
			SignerURL:       signerURL,
			Account:         account,
		},
		Relayer: Relayer{
			HTTPAddress:    relayerAddress,
			RequestTimeout: requestTimeout,
			RateLimit:      relayerRate,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		ConfigFilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
