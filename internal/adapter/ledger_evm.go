// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

// recordsContractABI is the subset of the records contract used here.
const recordsContractABI = `[
	{"type":"function","name":"getAllBusinessIds","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"string[]"}]},
	{"type":"function","name":"getBusinessData","stateMutability":"view",
	 "inputs":[{"name":"businessId","type":"string"}],
	 "outputs":[
		{"name":"name","type":"string"},
		{"name":"publicValue1","type":"uint256"},
		{"name":"publicValue2","type":"uint256"},
		{"name":"description","type":"string"},
		{"name":"creator","type":"address"},
		{"name":"timestamp","type":"uint256"},
		{"name":"decryptedValue","type":"uint32"},
		{"name":"isVerified","type":"bool"}]},
	{"type":"function","name":"getEncryptedValue","stateMutability":"view",
	 "inputs":[{"name":"businessId","type":"string"}],
	 "outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"isAvailable","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"createBusinessData","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"businessId","type":"string"},
		{"name":"name","type":"string"},
		{"name":"encryptedValue","type":"bytes32"},
		{"name":"inputProof","type":"bytes"},
		{"name":"publicValue1","type":"uint256"},
		{"name":"publicValue2","type":"uint256"},
		{"name":"description","type":"string"}],
	 "outputs":[]},
	{"type":"function","name":"verifyDecryption","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"businessId","type":"string"},
		{"name":"abiEncodedClearValues","type":"bytes"},
		{"name":"decryptionProof","type":"bytes"}],
	 "outputs":[]}
]`

const defaultReceiptPollInterval = time.Second

// EVMBackend is the subset of an Ethereum RPC client the ledger client
// needs. *ethclient.Client satisfies it.
type EVMBackend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type evmLedgerClient struct {
	backend  EVMBackend
	contract *bind.BoundContract
	address  common.Address
	chainID  *big.Int
	signer   Signer

	pollInterval time.Duration

	logger *logger.Logger
}

// DialEVMBackend connects to the JSON-RPC endpoint in ledgerCfg.RPCURL.
func DialEVMBackend(ctx context.Context, ledgerCfg config.ClientLedger) (*ethclient.Client, error) {
	endpoint := strings.TrimSpace(ledgerCfg.RPCURL)
	if endpoint == "" {
		return nil, fmt.Errorf("ledger rpc url required")
	}
	return ethclient.DialContext(ctx, endpoint)
}

// NewEVMLedgerClient constructs a [LedgerClient] for the records contract at
// ledgerCfg.ContractAddress. signer may be nil, in which case only the
// [LedgerReader] methods work and writes fail with [ErrNoSigner].
func NewEVMLedgerClient(backend EVMBackend, ledgerCfg config.ClientLedger, signer Signer, logger *logger.Logger) (LedgerClient, error) {
	if !common.IsHexAddress(ledgerCfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", ledgerCfg.ContractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(recordsContractABI))
	if err != nil {
		return nil, fmt.Errorf("parse records contract abi: %w", err)
	}

	address := common.HexToAddress(ledgerCfg.ContractAddress)
	pollInterval := ledgerCfg.ReceiptPollInterval
	if pollInterval <= 0 {
		pollInterval = defaultReceiptPollInterval
	}

	return &evmLedgerClient{
		backend:      backend,
		contract:     bind.NewBoundContract(address, parsed, backend, backend, backend),
		address:      address,
		chainID:      new(big.Int).SetInt64(ledgerCfg.ChainID),
		signer:       signer,
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

func (c *evmLedgerClient) ContractAddress() string {
	return c.address.Hex()
}

// ListRecordIDs implements [LedgerReader] via getAllBusinessIds.
func (c *evmLedgerClient) ListRecordIDs(ctx context.Context) ([]string, error) {
	out, err := c.call(ctx, "getAllBusinessIds")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]string)).(*[]string), nil
}

// GetRecord implements [LedgerReader] via getBusinessData.
func (c *evmLedgerClient) GetRecord(ctx context.Context, id string) (models.EncryptedRecord, error) {
	out, err := c.call(ctx, "getBusinessData", id)
	if err != nil {
		return models.EncryptedRecord{}, err
	}
	if len(out) != 8 {
		return models.EncryptedRecord{}, fmt.Errorf("getBusinessData: unexpected output length %d", len(out))
	}

	creator := *abi.ConvertType(out[4], new(common.Address)).(*common.Address)
	if creator == (common.Address{}) {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	record := models.EncryptedRecord{
		ID:           id,
		Name:         *abi.ConvertType(out[0], new(string)).(*string),
		PublicValue1: bigToInt64(*abi.ConvertType(out[1], new(*big.Int)).(**big.Int)),
		PublicValue2: bigToInt64(*abi.ConvertType(out[2], new(*big.Int)).(**big.Int)),
		Description:  *abi.ConvertType(out[3], new(string)).(*string),
		Creator:      creator.Hex(),
		CreatedAt:    bigToInt64(*abi.ConvertType(out[5], new(*big.Int)).(**big.Int)),
		ClearValue:   int64(*abi.ConvertType(out[6], new(uint32)).(*uint32)),
		IsVerified:   *abi.ConvertType(out[7], new(bool)).(*bool),
	}
	return record.Sanitized(), nil
}

// GetCiphertextHandle implements [LedgerReader] via getEncryptedValue.
func (c *evmLedgerClient) GetCiphertextHandle(ctx context.Context, id string) (string, error) {
	out, err := c.call(ctx, "getEncryptedValue", id)
	if err != nil {
		return "", err
	}
	handle := *abi.ConvertType(out[0], new([32]byte)).(*[32]byte)
	if handle == ([32]byte{}) {
		return "", fmt.Errorf("%w: no ciphertext for %s", ErrRecordNotFound, id)
	}
	return hexutil.Encode(handle[:]), nil
}

// IsAvailable implements [LedgerReader].
func (c *evmLedgerClient) IsAvailable(ctx context.Context) (bool, error) {
	out, err := c.call(ctx, "isAvailable")
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// CreateRecord implements [LedgerWriter] via createBusinessData.
func (c *evmLedgerClient) CreateRecord(ctx context.Context, req models.CreateRecordRequest) (models.Transaction, error) {
	if len(req.Handle) != 32 {
		return models.Transaction{}, fmt.Errorf("%w: ciphertext handle must be 32 bytes, got %d", ErrMalformedResponse, len(req.Handle))
	}
	var handle [32]byte
	copy(handle[:], req.Handle)

	return c.transact(ctx, "createBusinessData",
		req.ID,
		req.Name,
		handle,
		req.Proof,
		big.NewInt(req.PublicValue1),
		big.NewInt(req.PublicValue2),
		req.Description,
	)
}

// SubmitVerifiedDecryption implements [LedgerWriter] via verifyDecryption.
func (c *evmLedgerClient) SubmitVerifiedDecryption(ctx context.Context, id string, encodedClearValues, proof []byte) (models.Transaction, error) {
	return c.transact(ctx, "verifyDecryption", id, encodedClearValues, proof)
}

// WaitConfirmed implements [LedgerWriter]. It polls for the receipt until
// the transaction is mined or ctx is done.
func (c *evmLedgerClient) WaitConfirmed(ctx context.Context, tx models.Transaction) error {
	hash := common.HexToHash(tx.Hash)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash)
			}
			c.logger.Debug().Str("tx", tx.Hash).Uint64("block", receipt.BlockNumber.Uint64()).Msg("transaction confirmed")
			return nil
		case err != nil && !errors.Is(err, ethereum.NotFound):
			return fmt.Errorf("fetch receipt %s: %w", tx.Hash, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *evmLedgerClient) call(ctx context.Context, method string, params ...any) ([]any, error) {
	var out []any
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, mapContractError(err))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return out, nil
}

func (c *evmLedgerClient) transact(ctx context.Context, method string, params ...any) (models.Transaction, error) {
	if c.signer == nil {
		return models.Transaction{}, ErrNoSigner
	}

	// Simulate first so a revert surfaces with its data intact; gas
	// estimation inside Transact flattens it into a plain message.
	var simulated []any
	simulateOpts := &bind.CallOpts{Context: ctx, From: c.signer.Address(), Pending: true}
	if err := c.contract.Call(simulateOpts, &simulated, method, params...); err != nil {
		return models.Transaction{}, fmt.Errorf("%s: %w", method, mapContractError(err))
	}

	opts := &bind.TransactOpts{
		From:    c.signer.Address(),
		Context: ctx,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if from != c.signer.Address() {
				return nil, bind.ErrNotAuthorized
			}
			return c.signer.SignTx(ctx, tx, c.chainID)
		},
	}

	tx, err := c.contract.Transact(opts, method, params...)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%s: %w", method, mapContractError(err))
	}

	c.logger.Debug().Str("method", method).Str("tx", tx.Hash().Hex()).Msg("transaction submitted")
	return models.Transaction{Hash: tx.Hash().Hex()}, nil
}

func bigToInt64(v *big.Int) int64 {
	if v == nil || !v.IsInt64() {
		return 0
	}
	return v.Int64()
}
