package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLedgerConfigs indicates invalid ledger settings (for example,
	// a missing RPC URL, a malformed contract address or no signer).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidRelayerConfigs indicates invalid relayer settings
	// (for example, missing address or request timeout).
	ErrInvalidRelayerConfigs = errors.New("invalid relayer configuration")
	// ErrInvalidStatusConfigs indicates negative status visibility delays.
	ErrInvalidStatusConfigs = errors.New("invalid status configuration")
	// ErrInvalidCacheConfigs indicates a non-positive fetch concurrency.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP facade address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is not .json, .toml, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
