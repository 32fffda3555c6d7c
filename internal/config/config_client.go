package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level settings of the loyalty keeper runtime.
type ClientApp struct {
	// LogFile is the rotated log destination. Empty means stdout.
	LogFile string
	// Version is reported by the version endpoint.
	Version string
	// RecordIDPrefix is prepended to generated record ids.
	RecordIDPrefix string
}

// ClientLedger holds records contract and signer settings.
type ClientLedger struct {
	// RPCURL is the JSON-RPC endpoint of the ledger node.
	RPCURL string
	// ContractAddress is the records contract address.
	ContractAddress string
	// ChainID is the EIP-155 chain id used when signing.
	ChainID int64
	// PrivateKey is the hex key of the in-process signer.
	PrivateKey string
	// SignerURL is the base URL of the remote signer.
	SignerURL string
	// Account is the wallet address of the remote signer.
	Account string
	// SignerTimeout bounds one remote signing request.
	SignerTimeout time.Duration
	// ReceiptPollInterval is the period of receipt polling.
	ReceiptPollInterval time.Duration
}

// ClientRelayer holds relayer transport settings.
type ClientRelayer struct {
	// HTTPAddress is the relayer base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound relayer requests.
	RequestTimeout time.Duration
	// RateLimit is the sustained request rate. Zero disables pacing.
	RateLimit float64
	// Burst is the limiter bucket size.
	Burst int
}

// ClientStatus holds status visibility delays.
type ClientStatus struct {
	SuccessDelay time.Duration
	ErrorDelay   time.Duration
}

// ClientCache holds record cache settings.
type ClientCache struct {
	FetchConcurrency int
}

// ClientServer holds HTTP facade settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the record cache is refreshed.
	RefreshInterval time.Duration
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Ledger  ClientLedger
	Relayer ClientRelayer
	Status  ClientStatus
	Cache   ClientCache
	Server  ClientServer
	Workers ClientWorkers
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:        cfg.App.LogFile,
			Version:        cfg.App.Version,
			RecordIDPrefix: cfg.App.RecordIDPrefix,
		},
		Ledger: ClientLedger{
			RPCURL:              cfg.Ledger.RPCURL,
			ContractAddress:     cfg.Ledger.ContractAddress,
			ChainID:             cfg.Ledger.ChainID,
			PrivateKey:          cfg.Ledger.PrivateKey,
			SignerURL:           cfg.Ledger.SignerURL,
			Account:             cfg.Ledger.Account,
			SignerTimeout:       cfg.Ledger.SignerTimeout,
			ReceiptPollInterval: cfg.Ledger.ReceiptPollInterval,
		},
		Relayer: ClientRelayer{
			HTTPAddress:    cfg.Relayer.HTTPAddress,
			RequestTimeout: cfg.Relayer.RequestTimeout,
			RateLimit:      cfg.Relayer.RateLimit,
			Burst:          cfg.Relayer.Burst,
		},
		Status: ClientStatus{
			SuccessDelay: cfg.Status.SuccessDelay,
			ErrorDelay:   cfg.Status.ErrorDelay,
		},
		Cache: ClientCache{
			FetchConcurrency: cfg.Cache.FetchConcurrency,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}
}
