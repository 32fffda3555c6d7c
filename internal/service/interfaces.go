package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// RecordCache holds the in-memory snapshot of every known record. The
// snapshot is only ever replaced as a whole.
type RecordCache interface {
	// Refresh reloads every record from the ledger. A record whose detail
	// cannot be fetched is skipped and logged. A failed listing returns an
	// error and keeps the previous snapshot.
	Refresh(ctx context.Context) error

	// Snapshot returns a copy of the current records in ledger order.
	Snapshot() []models.EncryptedRecord

	// Get returns the cached record with id or ErrRecordNotFound.
	Get(id string) (models.EncryptedRecord, error)

	// Search returns the records whose name or description contains term,
	// ignoring case.
	Search(term string) []models.EncryptedRecord

	// Page returns one page of Search(term). Pages are 1-based.
	Page(term string, page, perPage int) models.RecordPage

	// Stats counts records, verified records and records created by owner.
	Stats(owner string) models.RecordStats

	// RefreshedAt returns the completion time of the last successful
	// refresh, or the zero time.
	RefreshedAt() time.Time
}

// StatusTracker keeps one live status per operation class. A terminal
// status hides itself after a fixed delay unless a newer status replaced it.
type StatusTracker interface {
	Pending(class models.OperationClass, message string)
	Succeed(class models.OperationClass, message string)
	Fail(class models.OperationClass, message string)

	Get(class models.OperationClass) models.OperationStatus
	All() []models.OperationStatus

	// Close stops every pending auto-hide timer.
	Close()
}

// LifecycleController drives the create and reveal workflows of encrypted
// records.
type LifecycleController interface {
	// CreateRecord encrypts the draft value for caller, stores the record on
	// the ledger, waits for confirmation and refreshes the cache. It returns
	// the new record id.
	CreateRecord(ctx context.Context, draft models.NewRecordDraft, caller string) (string, error)

	// RevealRecord publishes the clear value of a record. Already verified
	// records are answered from the ledger read without an oracle round
	// trip.
	RevealRecord(ctx context.Context, id, caller string) (models.RevealResult, error)

	// CheckAvailability probes the records contract.
	CheckAvailability(ctx context.Context) error

	// RefreshRecords reloads the cache on behalf of a user.
	RefreshRecords(ctx context.Context) error

	Draft() models.NewRecordDraft
	SetDraft(draft models.NewRecordDraft)
	CancelDraft()
}

// LifecycleControllerWrapper decorates a LifecycleController with additional
// behavior such as metrics.
type LifecycleControllerWrapper interface {
	Wrap(LifecycleController) LifecycleController
}

// RefreshObserver receives the result of every cache refresh.
type RefreshObserver interface {
	ObserveRefresh(loaded, skipped int, elapsed time.Duration, err error)
}

// OperationObserver receives the outcome of every controller operation.
type OperationObserver interface {
	ObserveOperation(class models.OperationClass, outcome models.Outcome, elapsed time.Duration)
	ObserveCoalescedReveal()
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
