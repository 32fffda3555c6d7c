package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

type observedLifecycleController struct {
	inner    LifecycleController
	observer OperationObserver
}

// NewObservedLifecycleController returns a wrapper that reports the outcome
// and duration of every operation to observer.
func NewObservedLifecycleController(observer OperationObserver) LifecycleControllerWrapper {
	if observer == nil {
		observer = nopObserver{}
	}
	return &observedLifecycleController{observer: observer}
}

func (o *observedLifecycleController) Wrap(inner LifecycleController) LifecycleController {
	o.inner = inner
	return o
}

func (o *observedLifecycleController) CreateRecord(ctx context.Context, draft models.NewRecordDraft, caller string) (string, error) {
	start := time.Now()
	id, err := o.inner.CreateRecord(ctx, draft, caller)
	o.observer.ObserveOperation(models.OperationCreate, outcomeOf(err), time.Since(start))
	return id, err
}

func (o *observedLifecycleController) RevealRecord(ctx context.Context, id, caller string) (models.RevealResult, error) {
	start := time.Now()
	result, err := o.inner.RevealRecord(ctx, id, caller)

	outcome := outcomeOf(err)
	if err == nil {
		switch result.Source {
		case models.RevealSourceCache:
			outcome = models.OutcomeShortCircuit
		case models.RevealSourceConcurrent:
			outcome = models.OutcomeConcurrent
		}
	}
	o.observer.ObserveOperation(models.OperationReveal, outcome, time.Since(start))
	return result, err
}

func (o *observedLifecycleController) CheckAvailability(ctx context.Context) error {
	start := time.Now()
	err := o.inner.CheckAvailability(ctx)
	o.observer.ObserveOperation(models.OperationAvailability, outcomeOf(err), time.Since(start))
	return err
}

func (o *observedLifecycleController) RefreshRecords(ctx context.Context) error {
	start := time.Now()
	err := o.inner.RefreshRecords(ctx)
	o.observer.ObserveOperation(models.OperationRefresh, outcomeOf(err), time.Since(start))
	return err
}

func (o *observedLifecycleController) Draft() models.NewRecordDraft {
	return o.inner.Draft()
}

func (o *observedLifecycleController) SetDraft(draft models.NewRecordDraft) {
	o.inner.SetDraft(draft)
}

func (o *observedLifecycleController) CancelDraft() {
	o.inner.CancelDraft()
}

func outcomeOf(err error) models.Outcome {
	switch {
	case err == nil:
		return models.OutcomeSuccess
	case errors.Is(err, ErrOperationInProgress):
		return models.OutcomeInProgress
	default:
		return models.OutcomeError
	}
}
