package service

import "errors"

// Operation error kinds. Failures are wrapped as fmt.Errorf("%w: %w", kind,
// cause) so errors.Is matches both the kind and the adapter cause.
var (
	ErrNotConnected       = errors.New("wallet not connected")
	ErrEncryptionFailed   = errors.New("encryption failed")
	ErrUserRejected       = errors.New("transaction rejected by user")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrConfirmationFailed = errors.New("confirmation failed")
	ErrRevealFailed       = errors.New("reveal failed")

	// ErrAlreadyVerifiedConcurrently marks a reveal that lost the race to
	// another verifier. It is recovered into a success and never returned.
	ErrAlreadyVerifiedConcurrently = errors.New("record already verified concurrently")

	// ErrPartialLoad marks a single record skipped during a refresh. It is
	// logged and never returned.
	ErrPartialLoad = errors.New("record skipped during refresh")

	ErrOperationInProgress = errors.New("operation already in progress")
	ErrLedgerUnavailable   = errors.New("ledger unavailable")
	ErrRecordNotFound      = errors.New("record not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
