// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer clients of the three external
// services the lifecycle controller coordinates: the ledger contract, the
// encryption service and the decryption oracle.
//
// The service layer only sees the interfaces declared here. The package ships
// an EVM implementation of [LedgerClient] built on go-ethereum
// ([NewEVMLedgerClient]) and a REST implementation of [EncryptionService] and
// [DecryptionOracle] that talks to a relayer ([NewHTTPRelayer]).
//
// Failure classification happens in this package only: revert reasons,
// relayer HTTP statuses and signer refusals are turned into the sentinel
// values from errors.go so callers can use [errors.Is] instead of inspecting
// messages.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerReader is the read-only side of the records contract.
type LedgerReader interface {
	// ContractAddress returns the address of the records contract. It is
	// what ciphertexts and decryption proofs are bound to.
	ContractAddress() string

	// ListRecordIDs returns every record identifier in ledger enumeration
	// order.
	ListRecordIDs(ctx context.Context) ([]string, error)

	// GetRecord returns the public detail of a record. CiphertextHandle is
	// left empty. Returns [ErrRecordNotFound] (wrapped) for unknown ids.
	GetRecord(ctx context.Context, id string) (models.EncryptedRecord, error)

	// GetCiphertextHandle returns the 0x-prefixed handle of the record's
	// encrypted value.
	GetCiphertextHandle(ctx context.Context, id string) (string, error)

	// IsAvailable performs the contract's liveness probe.
	IsAvailable(ctx context.Context) (bool, error)
}

// LedgerWriter is the signer-bound side of the records contract. Every
// method that returns a [models.Transaction] only submits it; callers await
// confirmation with WaitConfirmed.
type LedgerWriter interface {
	// CreateRecord submits a new encrypted record. Returns [ErrUserRejected]
	// (wrapped) when the signer declines.
	CreateRecord(ctx context.Context, req models.CreateRecordRequest) (models.Transaction, error)

	// SubmitVerifiedDecryption submits a decryption proof for the record.
	// Returns [ErrAlreadyVerified] (wrapped) when the contract reports the
	// record as already verified.
	SubmitVerifiedDecryption(ctx context.Context, id string, encodedClearValues, proof []byte) (models.Transaction, error)

	// WaitConfirmed blocks until tx is mined. Returns
	// [ErrTransactionReverted] (wrapped) if it was mined but failed.
	WaitConfirmed(ctx context.Context, tx models.Transaction) error
}

// LedgerClient combines both sides of the records contract.
type LedgerClient interface {
	LedgerReader
	LedgerWriter
}

// EncryptionService turns a plaintext integer into a ciphertext handle plus
// a validity proof bound to contractAddress and submitterAddress.
type EncryptionService interface {
	Encrypt(ctx context.Context, contractAddress, submitterAddress string, value int64) (models.EncryptedInput, error)
}

// SubmitFunc forwards an oracle payload to the ledger and returns once the
// resulting transaction is confirmed.
type SubmitFunc func(ctx context.Context, encodedClearValues, proof []byte) (models.Transaction, error)

// DecryptionOracle produces public cleartexts for ciphertext handles. Verify
// obtains the cleartexts and their proof and invokes submit with them before
// returning; obtaining and submitting the proof are one step.
//
// The returned ClearValues are keyed by handle. Implementations may normalize
// the hex letter case of the keys, so callers match them with
// [models.DecryptionResult.ValueFor].
type DecryptionOracle interface {
	Verify(ctx context.Context, handles []string, contractAddress string, submit SubmitFunc) (models.DecryptionResult, error)
}
