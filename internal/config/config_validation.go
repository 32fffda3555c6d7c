// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Requirements that only matter to a particular runtime are
// checked by that runtime's view (see [ClientConfig.validate]).
func (cfg *StructuredConfig) validate() error {
	if cfg.Status.SuccessDelay < 0 || cfg.Status.ErrorDelay < 0 {
		return ErrInvalidStatusConfigs
	}

	if cfg.Relayer.RateLimit < 0 || cfg.Relayer.Burst < 0 {
		return ErrInvalidRelayerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Ledger.RPCURL == "" || !common.IsHexAddress(cfg.Ledger.ContractAddress) {
		return fmt.Errorf("%w: rpc url and contract address are required", ErrInvalidLedgerConfigs)
	}

	if cfg.Ledger.PrivateKey == "" && cfg.Ledger.SignerURL == "" {
		return fmt.Errorf("%w: a private key or a signer url is required", ErrInvalidLedgerConfigs)
	}

	if cfg.Ledger.SignerURL != "" && !common.IsHexAddress(cfg.Ledger.Account) {
		return fmt.Errorf("%w: remote signer needs a valid account", ErrInvalidLedgerConfigs)
	}

	if cfg.Relayer.HTTPAddress == "" || cfg.Relayer.RequestTimeout == 0 {
		return ErrInvalidRelayerConfigs
	}

	if cfg.Cache.FetchConcurrency < 1 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
