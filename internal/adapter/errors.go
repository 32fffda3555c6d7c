// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Domain errors raised by the ledger, the signer and the relayer.
var (
	// ErrUserRejected is returned when the wallet signer declines to sign a
	// transaction.
	ErrUserRejected = errors.New("transaction rejected by user")

	// ErrAlreadyVerified is returned when the contract or the oracle reports
	// that the record's decryption has already been verified on-chain.
	ErrAlreadyVerified = errors.New("data already verified")

	// ErrRecordNotFound is returned for unknown record ids.
	ErrRecordNotFound = errors.New("record not found")

	// ErrTransactionReverted is returned when a transaction was mined with
	// a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrMalformedResponse is returned when a relayer response cannot be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed relayer response")

	// ErrNoSigner is returned by signer-bound calls when no signer is
	// configured.
	ErrNoSigner = errors.New("no signer configured")
)

// Transport errors mapped from relayer HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
