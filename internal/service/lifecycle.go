// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-loyalty-keeper/internal/adapter"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/internal/utils"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

type lifecycleController struct {
	ledger     adapter.LedgerClient
	encryption adapter.EncryptionService
	oracle     adapter.DecryptionOracle

	cache  RecordCache
	status StatusTracker
	ids    *utils.IDGenerator

	inflight *inflightRegistry
	reveals  singleflight.Group
	observer OperationObserver

	logger *logger.Logger

	draftMu sync.Mutex
	draft   models.NewRecordDraft
}

// NewLifecycleController wires the create and reveal workflows to the three
// external services. The controller owns cache and status: nothing else
// should refresh the cache on behalf of a user operation or set statuses.
// observer may be nil.
func NewLifecycleController(
	ledger adapter.LedgerClient,
	encryption adapter.EncryptionService,
	oracle adapter.DecryptionOracle,
	cache RecordCache,
	status StatusTracker,
	ids *utils.IDGenerator,
	observer OperationObserver,
	logger *logger.Logger,
) LifecycleController {
	if observer == nil {
		observer = nopObserver{}
	}

	return &lifecycleController{
		ledger:     ledger,
		encryption: encryption,
		oracle:     oracle,
		cache:      cache,
		status:     status,
		ids:        ids,
		inflight:   newInflightRegistry(),
		observer:   observer,
		logger:     logger,
	}
}

// ── create ───────────────────────────────────────────────────────────────────

func (c *lifecycleController) CreateRecord(ctx context.Context, draft models.NewRecordDraft, caller string) (string, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		c.status.Fail(models.OperationCreate, msgConnectWallet)
		return "", ErrNotConnected
	}

	release, ok := c.inflight.acquire(models.OperationCreate, strings.ToLower(caller))
	if !ok {
		return "", fmt.Errorf("%w: create by %s", ErrOperationInProgress, caller)
	}
	defer release()

	c.status.Pending(models.OperationCreate, msgCreating)

	id := c.ids.Generate()
	log := c.logger.With().Str("record_id", id).Str("caller", caller).Logger()

	input, err := c.encryption.Encrypt(ctx, c.ledger.ContractAddress(), caller, draft.Value())
	if err != nil {
		return "", c.failCreate(fmt.Errorf("%w: %w", ErrEncryptionFailed, err), err)
	}

	tx, err := c.ledger.CreateRecord(ctx, models.CreateRecordRequest{
		ID:           id,
		Name:         draft.Name,
		Handle:       input.Handle,
		Proof:        input.Proof,
		PublicValue1: 0,
		PublicValue2: 0,
		Description:  draft.Description,
	})
	if err != nil {
		return "", c.failCreate(mapSubmissionError(err), err)
	}

	c.status.Pending(models.OperationCreate, msgAwaitingConfirmation)
	log.Debug().Str("tx", tx.Hash).Msg("create submitted")

	if err = c.ledger.WaitConfirmed(ctx, tx); err != nil {
		return "", c.failCreate(fmt.Errorf("%w: %w", ErrConfirmationFailed, err), err)
	}

	// The record is on-chain at this point; a failed reload only delays
	// when it shows up.
	if err = c.cache.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("refresh after create failed")
	}

	c.CancelDraft()
	c.status.Succeed(models.OperationCreate, msgCreated)
	log.Info().Str("tx", tx.Hash).Msg("record created")

	return id, nil
}

func (c *lifecycleController) failCreate(err, cause error) error {
	c.status.Fail(models.OperationCreate, createFailureMessage(err, cause))
	c.logger.Error().Err(err).Msg("create record failed")
	return err
}

// ── reveal ───────────────────────────────────────────────────────────────────

// revealOutcome is what a reveal flight hands to every waiting caller.
type revealOutcome struct {
	result models.RevealResult
	err    error
}

func (c *lifecycleController) RevealRecord(ctx context.Context, id, caller string) (models.RevealResult, error) {
	if strings.TrimSpace(caller) == "" {
		c.status.Fail(models.OperationReveal, msgConnectWallet)
		return models.RevealResult{}, ErrNotConnected
	}

	// The flight outlives a caller that gives up, so the remaining callers
	// still get the one outcome.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.reveals.DoChan("reveal:"+id, func() (any, error) {
		result, err := c.reveal(flightCtx, id)
		return revealOutcome{result: result, err: err}, nil
	})

	select {
	case <-ctx.Done():
		return models.RevealResult{}, fmt.Errorf("%w: %w", ErrRevealFailed, ctx.Err())
	case res := <-ch:
		if res.Shared {
			c.observer.ObserveCoalescedReveal()
		}
		outcome := res.Val.(revealOutcome)
		return outcome.result, outcome.err
	}
}

func (c *lifecycleController) reveal(ctx context.Context, id string) (models.RevealResult, error) {
	log := c.logger.With().Str("record_id", id).Logger()

	record, err := c.ledger.GetRecord(ctx, id)
	if err != nil {
		return models.RevealResult{}, c.failReveal(err)
	}

	if value, ok := record.RevealedValue(); ok {
		c.status.Succeed(models.OperationReveal, msgAlreadyVerified)
		log.Debug().Msg("record already verified, skipping oracle")
		return models.RevealResult{ClearValue: value, Revealed: true, Source: models.RevealSourceCache}, nil
	}

	record.CiphertextHandle, err = c.ledger.GetCiphertextHandle(ctx, id)
	if err != nil {
		return models.RevealResult{}, c.failReveal(err)
	}

	c.status.Pending(models.OperationReveal, msgVerifying)

	result, err := c.oracle.Verify(ctx, []string{record.CiphertextHandle}, c.ledger.ContractAddress(), c.submitDecryption(id))
	if err != nil {
		if errors.Is(err, adapter.ErrAlreadyVerified) {
			log.Info().Err(fmt.Errorf("%w: %w", ErrAlreadyVerifiedConcurrently, err)).Msg("record verified by another party")
			c.refreshAfter(ctx, "reveal")
			c.status.Succeed(models.OperationReveal, msgVerifiedElsewhere)
			return models.RevealResult{Source: models.RevealSourceConcurrent}, nil
		}
		return models.RevealResult{}, c.failReveal(err)
	}

	// The proof is confirmed on-chain at this point, so the cache is
	// refreshed even when the oracle result lacks the value.
	c.refreshAfter(ctx, "reveal")

	value, ok := result.ValueFor(record.CiphertextHandle)
	if !ok {
		return models.RevealResult{}, c.failReveal(fmt.Errorf("oracle returned no value for handle %s", record.CiphertextHandle))
	}

	c.status.Succeed(models.OperationReveal, msgRevealed)
	log.Info().Str("tx", result.Transaction.Hash).Msg("record revealed")

	return models.RevealResult{ClearValue: value, Revealed: true, Source: models.RevealSourceOracle}, nil
}

// submitDecryption returns the oracle callback that posts the proof for id
// and waits until it is mined.
func (c *lifecycleController) submitDecryption(id string) adapter.SubmitFunc {
	return func(ctx context.Context, encodedClearValues, proof []byte) (models.Transaction, error) {
		tx, err := c.ledger.SubmitVerifiedDecryption(ctx, id, encodedClearValues, proof)
		if err != nil {
			return models.Transaction{}, err
		}

		if err = c.ledger.WaitConfirmed(ctx, tx); err != nil {
			return models.Transaction{}, err
		}
		return tx, nil
	}
}

func (c *lifecycleController) failReveal(cause error) error {
	c.status.Fail(models.OperationReveal, msgDecryptionFailed+causeMessage(cause))

	err := mapRevealError(cause)
	c.logger.Error().Err(err).Msg("reveal record failed")
	return err
}

// ── availability & refresh ───────────────────────────────────────────────────

func (c *lifecycleController) CheckAvailability(ctx context.Context) error {
	available, err := c.ledger.IsAvailable(ctx)
	if err != nil {
		c.status.Fail(models.OperationAvailability, msgAvailabilityFailed)
		return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	if !available {
		c.status.Fail(models.OperationAvailability, msgUnavailable)
		return ErrLedgerUnavailable
	}

	c.status.Succeed(models.OperationAvailability, msgAvailable)
	return nil
}

func (c *lifecycleController) RefreshRecords(ctx context.Context) error {
	if err := c.cache.Refresh(ctx); err != nil {
		c.status.Fail(models.OperationRefresh, msgRefreshFailed)
		return err
	}
	return nil
}

func (c *lifecycleController) refreshAfter(ctx context.Context, operation string) {
	if err := c.cache.Refresh(ctx); err != nil {
		c.logger.Warn().Err(err).Str("after", operation).Msg("cache refresh failed")
	}
}

// ── draft ────────────────────────────────────────────────────────────────────

func (c *lifecycleController) Draft() models.NewRecordDraft {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.draft
}

func (c *lifecycleController) SetDraft(draft models.NewRecordDraft) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	c.draft = draft
}

func (c *lifecycleController) CancelDraft() {
	c.SetDraft(models.NewRecordDraft{})
}
