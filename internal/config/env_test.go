// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE":         "/var/log/loyalty.log",
		"APP_VERSION":          "1.2.3",
		"APP_RECORD_ID_PREFIX": "promo",

		"LEDGER_RPC_URL":               "http://127.0.0.1:8545",
		"LEDGER_CONTRACT_ADDRESS":      "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"LEDGER_CHAIN_ID":              "11155111",
		"LEDGER_PRIVATE_KEY":           "deadbeef",
		"LEDGER_SIGNER_URL":            "http://localhost:9000",
		"LEDGER_ACCOUNT":               "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"LEDGER_SIGNER_TIMEOUT":        "90s",
		"LEDGER_RECEIPT_POLL_INTERVAL": "500ms",

		"RELAYER_ADDRESS":         "http://localhost:7000",
		"RELAYER_REQUEST_TIMEOUT": "15s",
		"RELAYER_RATE_LIMIT":      "4",
		"RELAYER_BURST":           "2",

		"STATUS_SUCCESS_DELAY": "2s",
		"STATUS_ERROR_DELAY":   "3s",

		"CACHE_FETCH_CONCURRENCY": "16",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"WORKERS_REFRESH_INTERVAL": "45s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)

	assert.Equal(t, "/var/log/loyalty.log", cfg.App.LogFile)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "promo", cfg.App.RecordIDPrefix)

	assert.Equal(t, "http://127.0.0.1:8545", cfg.Ledger.RPCURL)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Ledger.ContractAddress)
	assert.Equal(t, int64(11155111), cfg.Ledger.ChainID)
	assert.Equal(t, "deadbeef", cfg.Ledger.PrivateKey)
	assert.Equal(t, "http://localhost:9000", cfg.Ledger.SignerURL)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", cfg.Ledger.Account)
	assert.Equal(t, 90*time.Second, cfg.Ledger.SignerTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Ledger.ReceiptPollInterval)

	assert.Equal(t, "http://localhost:7000", cfg.Relayer.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Relayer.RequestTimeout)
	assert.InDelta(t, 4.0, cfg.Relayer.RateLimit, 1e-9)
	assert.Equal(t, 2, cfg.Relayer.Burst)

	assert.Equal(t, 2*time.Second, cfg.Status.SuccessDelay)
	assert.Equal(t, 3*time.Second, cfg.Status.ErrorDelay)

	assert.Equal(t, 16, cfg.Cache.FetchConcurrency)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 45*time.Second, cfg.Workers.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"LEDGER_RPC_URL":  "http://127.0.0.1:8545",
		"RELAYER_ADDRESS": "http://localhost:7000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Ledger.RPCURL)
	assert.Equal(t, "http://localhost:7000", cfg.Relayer.HTTPAddress)
	assert.Empty(t, cfg.Ledger.ContractAddress)
	assert.Zero(t, cfg.Relayer.RequestTimeout)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STATUS_SUCCESS_DELAY": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidChainID(t *testing.T) {
	setEnvVars(t, map[string]string{"LEDGER_CHAIN_ID": "mainnet"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"WORKERS_REFRESH_INTERVAL": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers.RefreshInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_LOG_FILE",
		"APP_VERSION",
		"APP_RECORD_ID_PREFIX",

		"LEDGER_RPC_URL",
		"LEDGER_CONTRACT_ADDRESS",
		"LEDGER_CHAIN_ID",
		"LEDGER_PRIVATE_KEY",
		"LEDGER_SIGNER_URL",
		"LEDGER_ACCOUNT",
		"LEDGER_SIGNER_TIMEOUT",
		"LEDGER_RECEIPT_POLL_INTERVAL",

		"RELAYER_ADDRESS",
		"RELAYER_REQUEST_TIMEOUT",
		"RELAYER_RATE_LIMIT",
		"RELAYER_BURST",

		"STATUS_SUCCESS_DELAY",
		"STATUS_ERROR_DELAY",

		"CACHE_FETCH_CONCURRENCY",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"WORKERS_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
