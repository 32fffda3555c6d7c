package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	cfg := newClientConfig(defaults())
	cfg.Ledger.RPCURL = "http://127.0.0.1:8545"
	cfg.Ledger.ContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	cfg.Ledger.PrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	cfg.Relayer.HTTPAddress = "http://localhost:7000"
	return cfg
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{
			name:    "missing rpc url",
			mutate:  func(cfg *ClientConfig) { cfg.Ledger.RPCURL = "" },
			wantErr: ErrInvalidLedgerConfigs,
		},
		{
			name:    "malformed contract address",
			mutate:  func(cfg *ClientConfig) { cfg.Ledger.ContractAddress = "0xABC" },
			wantErr: ErrInvalidLedgerConfigs,
		},
		{
			name:    "no signer",
			mutate:  func(cfg *ClientConfig) { cfg.Ledger.PrivateKey = "" },
			wantErr: ErrInvalidLedgerConfigs,
		},
		{
			name: "remote signer without account",
			mutate: func(cfg *ClientConfig) {
				cfg.Ledger.PrivateKey = ""
				cfg.Ledger.SignerURL = "http://localhost:9000"
			},
			wantErr: ErrInvalidLedgerConfigs,
		},
		{
			name: "remote signer with account",
			mutate: func(cfg *ClientConfig) {
				cfg.Ledger.PrivateKey = ""
				cfg.Ledger.SignerURL = "http://localhost:9000"
				cfg.Ledger.Account = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
			},
		},
		{
			name:    "missing relayer",
			mutate:  func(cfg *ClientConfig) { cfg.Relayer.HTTPAddress = "" },
			wantErr: ErrInvalidRelayerConfigs,
		},
		{
			name:    "zero relayer timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Relayer.RequestTimeout = 0 },
			wantErr: ErrInvalidRelayerConfigs,
		},
		{
			name:    "zero fetch concurrency",
			mutate:  func(cfg *ClientConfig) { cfg.Cache.FetchConcurrency = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name:    "missing server address",
			mutate:  func(cfg *ClientConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero refresh interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.RefreshInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_CopiesSections(t *testing.T) {
	src := defaults()
	src.Ledger.ChainID = 31337
	src.Relayer.RateLimit = 3

	cfg := newClientConfig(src)
	assert.Equal(t, int64(31337), cfg.Ledger.ChainID)
	assert.InDelta(t, 3.0, cfg.Relayer.RateLimit, 1e-9)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 2*time.Second, cfg.Status.SuccessDelay)
}
