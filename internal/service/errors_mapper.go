package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-loyalty-keeper/internal/adapter"
)

// Status messages shown to the user.
const (
	msgConnectWallet = "Please connect wallet first"

	msgCreating             = "Creating encrypted loyalty data..."
	msgAwaitingConfirmation = "Waiting for transaction confirmation..."
	msgCreated              = "Loyalty data created successfully!"
	msgUserRejected         = "Transaction rejected by user"
	msgSubmissionFailed     = "Submission failed: "

	msgAlreadyVerified     = "Data already verified on-chain"
	msgVerifying           = "Verifying decryption on-chain..."
	msgRevealed            = "Data decrypted and verified successfully!"
	msgVerifiedElsewhere   = "Data is already verified on-chain"
	msgDecryptionFailed    = "Decryption failed: "
	msgAvailable           = "Contract is available!"
	msgUnavailable         = "Contract is not available"
	msgAvailabilityFailed  = "Availability check failed"
	msgRefreshFailed       = "Failed to load data"
	msgUnknownFailureCause = "Unknown error"
)

// mapSubmissionError classifies a failed create transaction. A signer
// refusal is the only case told apart from other submission failures.
func mapSubmissionError(err error) error {
	if errors.Is(err, adapter.ErrUserRejected) {
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
}

// mapRevealError wraps a reveal failure, keeping a missing record
// recognisable.
func mapRevealError(err error) error {
	if errors.Is(err, adapter.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w: %w", ErrRevealFailed, ErrRecordNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrRevealFailed, err)
}

// createFailureMessage renders the status message of a failed create.
func createFailureMessage(err, cause error) string {
	if errors.Is(err, ErrUserRejected) {
		return msgUserRejected
	}
	return msgSubmissionFailed + causeMessage(cause)
}

func causeMessage(cause error) string {
	if cause == nil || cause.Error() == "" {
		return msgUnknownFailureCause
	}
	return cause.Error()
}
