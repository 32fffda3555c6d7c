package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

// fakeController answers every operation with preset values.
type fakeController struct {
	createErr    error
	revealResult models.RevealResult
	revealErr    error
	checkErr     error
	refreshErr   error
	draft        models.NewRecordDraft
}

func (f *fakeController) CreateRecord(context.Context, models.NewRecordDraft, string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return "loyalty-1", nil
}

func (f *fakeController) RevealRecord(context.Context, string, string) (models.RevealResult, error) {
	return f.revealResult, f.revealErr
}

func (f *fakeController) CheckAvailability(context.Context) error { return f.checkErr }
func (f *fakeController) RefreshRecords(context.Context) error    { return f.refreshErr }
func (f *fakeController) Draft() models.NewRecordDraft            { return f.draft }
func (f *fakeController) SetDraft(d models.NewRecordDraft)        { f.draft = d }
func (f *fakeController) CancelDraft()                            { f.draft = models.NewRecordDraft{} }

type operationCall struct {
	class   models.OperationClass
	outcome models.Outcome
}

type recordingOperationObserver struct {
	nopObserver
	calls []operationCall
}

func (o *recordingOperationObserver) ObserveOperation(class models.OperationClass, outcome models.Outcome, _ time.Duration) {
	o.calls = append(o.calls, operationCall{class: class, outcome: outcome})
}

func TestObservedLifecycleController_Outcomes(t *testing.T) {
	tests := []struct {
		name  string
		inner *fakeController
		call  func(c LifecycleController) error
		want  operationCall
	}{
		{
			name:  "create success",
			inner: &fakeController{},
			call: func(c LifecycleController) error {
				_, err := c.CreateRecord(context.Background(), models.NewRecordDraft{}, "0xABC")
				return err
			},
			want: operationCall{models.OperationCreate, models.OutcomeSuccess},
		},
		{
			name:  "create in progress",
			inner: &fakeController{createErr: fmt.Errorf("%w: create by 0xABC", ErrOperationInProgress)},
			call: func(c LifecycleController) error {
				_, err := c.CreateRecord(context.Background(), models.NewRecordDraft{}, "0xABC")
				return err
			},
			want: operationCall{models.OperationCreate, models.OutcomeInProgress},
		},
		{
			name:  "reveal short circuit",
			inner: &fakeController{revealResult: models.RevealResult{Source: models.RevealSourceCache}},
			call: func(c LifecycleController) error {
				_, err := c.RevealRecord(context.Background(), "loyalty-1", "0xABC")
				return err
			},
			want: operationCall{models.OperationReveal, models.OutcomeShortCircuit},
		},
		{
			name:  "reveal concurrent",
			inner: &fakeController{revealResult: models.RevealResult{Source: models.RevealSourceConcurrent}},
			call: func(c LifecycleController) error {
				_, err := c.RevealRecord(context.Background(), "loyalty-1", "0xABC")
				return err
			},
			want: operationCall{models.OperationReveal, models.OutcomeConcurrent},
		},
		{
			name:  "reveal oracle",
			inner: &fakeController{revealResult: models.RevealResult{Source: models.RevealSourceOracle}},
			call: func(c LifecycleController) error {
				_, err := c.RevealRecord(context.Background(), "loyalty-1", "0xABC")
				return err
			},
			want: operationCall{models.OperationReveal, models.OutcomeSuccess},
		},
		{
			name:  "availability error",
			inner: &fakeController{checkErr: ErrLedgerUnavailable},
			call:  func(c LifecycleController) error { return c.CheckAvailability(context.Background()) },
			want:  operationCall{models.OperationAvailability, models.OutcomeError},
		},
		{
			name:  "refresh success",
			inner: &fakeController{},
			call:  func(c LifecycleController) error { return c.RefreshRecords(context.Background()) },
			want:  operationCall{models.OperationRefresh, models.OutcomeSuccess},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer := &recordingOperationObserver{}
			controller := NewObservedLifecycleController(observer).Wrap(tt.inner)

			err := tt.call(controller)
			if tt.want.outcome == models.OutcomeSuccess || tt.want.outcome == models.OutcomeShortCircuit || tt.want.outcome == models.OutcomeConcurrent {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}

			assert.Equal(t, []operationCall{tt.want}, observer.calls)
		})
	}
}

func TestObservedLifecycleController_DraftPassesThrough(t *testing.T) {
	inner := &fakeController{}
	controller := NewObservedLifecycleController(nil).Wrap(inner)

	draft := models.NewRecordDraft{Name: "Gold", RawValue: "150"}
	controller.SetDraft(draft)
	assert.Equal(t, draft, inner.draft)
	assert.Equal(t, draft, controller.Draft())

	controller.CancelDraft()
	assert.True(t, inner.draft.IsEmpty())
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, models.OutcomeSuccess, outcomeOf(nil))
	assert.Equal(t, models.OutcomeInProgress, outcomeOf(ErrOperationInProgress))
	assert.Equal(t, models.OutcomeError, outcomeOf(errors.New("boom")))
}
