// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
)

// Signer signs ledger transactions on behalf of the connected wallet.
//
// Implementations return [ErrUserRejected] (wrapped) when the wallet holder
// declines; that is the only way a refusal is reported to callers.
type Signer interface {
	// Address returns the wallet address transactions are sent from.
	Address() common.Address

	// SignTx signs tx for chainID.
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// NewSigner picks a signer implementation from the ledger config: a remote
// wallet bridge when SignerURL is set, otherwise a local private key.
// Returns [ErrNoSigner] if neither is configured.
func NewSigner(ledgerCfg config.ClientLedger) (Signer, error) {
	if ledgerCfg.SignerURL != "" {
		return NewRemoteSigner(ledgerCfg)
	}
	if ledgerCfg.PrivateKey != "" {
		return NewKeySigner(ledgerCfg.PrivateKey)
	}
	return nil, ErrNoSigner
}

// keySigner signs with an in-process private key. Intended for development
// networks and tests.
type keySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner parses a hex-encoded secp256k1 private key, with or without
// the 0x prefix.
func NewKeySigner(privateKeyHex string) (Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &keySigner{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

func (s *keySigner) Address() common.Address {
	return s.address
}

func (s *keySigner) SignTx(_ context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}

// remoteSigner delegates signing to a wallet bridge over HTTP. The bridge
// shows the transaction to the wallet holder and answers 403 when they
// decline.
type remoteSigner struct {
	client  *utils.HTTPClient
	address common.Address
}

type signRequest struct {
	From       string `json:"from"`
	ChainID    string `json:"chain_id"`
	UnsignedTx string `json:"unsigned_tx"`
}

type signResponse struct {
	SignedTx string `json:"signed_tx"`
}

// NewRemoteSigner constructs a signer backed by the wallet bridge at
// ledgerCfg.SignerURL for the account ledgerCfg.Account.
func NewRemoteSigner(ledgerCfg config.ClientLedger) (Signer, error) {
	baseURL, err := normalizeBaseURL(ledgerCfg.SignerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid signer url: %w", err)
	}
	if !common.IsHexAddress(ledgerCfg.Account) {
		return nil, fmt.Errorf("invalid signer account %q", ledgerCfg.Account)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(ledgerCfg.SignerTimeout)

	return &remoteSigner{client: client, address: common.HexToAddress(ledgerCfg.Account)}, nil
}

func (s *remoteSigner) Address() common.Address {
	return s.address
}

func (s *remoteSigner) SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	unsigned, err := tx.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal unsigned tx: %w", err)
	}

	var result signResponse
	apiErr := new(relayerError)
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signRequest{From: s.address.Hex(), ChainID: chainID.String(), UnsignedTx: string(unsigned)}).
		SetResult(&result).
		SetError(apiErr).
		Post("/sign")
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}
	if resp.StatusCode() == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s", ErrUserRejected, apiErr.Message)
	}
	if err = mapRelayerError(resp, apiErr); err != nil {
		return nil, err
	}

	raw, err := hexutil.Decode(result.SignedTx)
	if err != nil {
		return nil, fmt.Errorf("%w: signed tx: %w", ErrMalformedResponse, err)
	}
	signed := new(types.Transaction)
	if err = signed.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: signed tx: %w", ErrMalformedResponse, err)
	}
	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	if err != nil {
		return nil, fmt.Errorf("recover signed tx sender: %w", err)
	}
	if sender != s.address {
		return nil, errors.New("signer returned a transaction from a different account")
	}
	return signed, nil
}
