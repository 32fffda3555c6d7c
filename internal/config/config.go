// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-loyalty-keeper application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables, command-line
// flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: log destination, version and the
	// prefix of generated record ids.
	App App `envPrefix:"APP_"`

	// Ledger holds the records contract location and the signer settings.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Relayer holds the address and pacing of the relayer that fronts the
	// encryption service and the decryption oracle.
	Relayer Relayer `envPrefix:"RELAYER_"`

	// Status holds the visibility delays of finished operation statuses.
	Status Status `envPrefix:"STATUS_"`

	// Cache holds record cache refresh settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Server holds the HTTP facade settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON, TOML or YAML
	// configuration file. When non-empty, the file is parsed and merged on top
	// of the values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the rotated client log file. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// RecordIDPrefix is prepended to generated record ids ("loyalty").
	// Env: APP_RECORD_ID_PREFIX
	RecordIDPrefix string `env:"RECORD_ID_PREFIX"`
}

// Ledger holds connection and signing settings for the records contract.
type Ledger struct {
	// RPCURL is the JSON-RPC endpoint of the ledger node.
	// Env: LEDGER_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ContractAddress is the 0x-prefixed address of the records contract.
	// Env: LEDGER_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// ChainID is the EIP-155 chain id used when signing.
	// Env: LEDGER_CHAIN_ID
	ChainID int64 `env:"CHAIN_ID"`

	// PrivateKey is a hex secp256k1 key for in-process signing. Ignored when
	// SignerURL is set. Must be kept confidential.
	// Env: LEDGER_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// SignerURL is the base URL of a wallet bridge that signs on behalf of
	// Account.
	// Env: LEDGER_SIGNER_URL
	SignerURL string `env:"SIGNER_URL"`

	// Account is the wallet address the remote signer signs for.
	// Env: LEDGER_ACCOUNT
	Account string `env:"ACCOUNT"`

	// SignerTimeout bounds a single remote signing request. The wallet
	// holder confirms within this window.
	// Env: LEDGER_SIGNER_TIMEOUT
	SignerTimeout time.Duration `env:"SIGNER_TIMEOUT"`

	// ReceiptPollInterval is how often a pending transaction's receipt is
	// polled.
	// Env: LEDGER_RECEIPT_POLL_INTERVAL
	ReceiptPollInterval time.Duration `env:"RECEIPT_POLL_INTERVAL"`
}

// Relayer holds settings of the encryption/decryption relayer.
type Relayer struct {
	// HTTPAddress is the relayer base URL.
	// Env: RELAYER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single relayer request.
	// Env: RELAYER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of relayer requests per second.
	// Zero disables pacing.
	// Env: RELAYER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// Burst is the number of requests allowed above RateLimit at once.
	// Env: RELAYER_BURST
	Burst int `env:"BURST"`
}

// Status holds how long a finished operation status stays visible.
type Status struct {
	// SuccessDelay defaults to 2s.
	// Env: STATUS_SUCCESS_DELAY
	SuccessDelay time.Duration `env:"SUCCESS_DELAY"`

	// ErrorDelay defaults to 3s.
	// Env: STATUS_ERROR_DELAY
	ErrorDelay time.Duration `env:"ERROR_DELAY"`
}

// Cache holds record cache settings.
type Cache struct {
	// FetchConcurrency bounds the number of record details fetched in
	// parallel during a refresh.
	// Env: CACHE_FETCH_CONCURRENCY
	FetchConcurrency int `env:"FETCH_CONCURRENCY"`
}

// Server holds network and timeout settings for the HTTP facade.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading request headers.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is the period of the background record cache refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaults returns the values used for every field no source sets.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RecordIDPrefix: "loyalty",
			Version:        "dev",
		},
		Ledger: Ledger{
			SignerTimeout:       2 * time.Minute,
			ReceiptPollInterval: time.Second,
		},
		Relayer: Relayer{
			RequestTimeout: 30 * time.Second,
			Burst:          1,
		},
		Status: Status{
			SuccessDelay: 2 * time.Second,
			ErrorDelay:   3 * time.Second,
		},
		Cache: Cache{
			FetchConcurrency: 8,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
