package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

const (
	defaultSuccessDelay = 2 * time.Second
	defaultErrorDelay   = 3 * time.Second
)

type trackedStatus struct {
	status     models.OperationStatus
	generation uint64
	timer      *time.Timer
}

type statusTracker struct {
	successDelay time.Duration
	errorDelay   time.Duration

	mu       sync.Mutex
	statuses map[models.OperationClass]*trackedStatus
	now      func() time.Time
}

// NewStatusTracker returns a tracker whose success and error statuses hide
// after cfg.SuccessDelay and cfg.ErrorDelay (2s and 3s when unset).
func NewStatusTracker(cfg config.ClientStatus) StatusTracker {
	return newStatusTracker(cfg)
}

func newStatusTracker(cfg config.ClientStatus) *statusTracker {
	if cfg.SuccessDelay <= 0 {
		cfg.SuccessDelay = defaultSuccessDelay
	}
	if cfg.ErrorDelay <= 0 {
		cfg.ErrorDelay = defaultErrorDelay
	}

	statuses := make(map[models.OperationClass]*trackedStatus, len(models.OperationClasses))
	for _, class := range models.OperationClasses {
		statuses[class] = &trackedStatus{status: models.IdleStatus(class)}
	}

	return &statusTracker{
		successDelay: cfg.SuccessDelay,
		errorDelay:   cfg.ErrorDelay,
		statuses:     statuses,
		now:          time.Now,
	}
}

func (t *statusTracker) Pending(class models.OperationClass, message string) {
	t.set(class, models.PhasePending, message)
}

func (t *statusTracker) Succeed(class models.OperationClass, message string) {
	t.set(class, models.PhaseSuccess, message)
}

func (t *statusTracker) Fail(class models.OperationClass, message string) {
	t.set(class, models.PhaseError, message)
}

func (t *statusTracker) Get(class models.OperationClass) models.OperationStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tracked, ok := t.statuses[class]; ok {
		return tracked.status
	}
	return models.IdleStatus(class)
}

func (t *statusTracker) All() []models.OperationStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	all := make([]models.OperationStatus, 0, len(models.OperationClasses))
	for _, class := range models.OperationClasses {
		all = append(all, t.statuses[class].status)
	}
	return all
}

func (t *statusTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, tracked := range t.statuses {
		if tracked.timer != nil {
			tracked.timer.Stop()
			tracked.timer = nil
		}
	}
}

// set replaces the live status of class and cancels the auto-hide of the
// one it replaces.
func (t *statusTracker) set(class models.OperationClass, phase models.Phase, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracked, ok := t.statuses[class]
	if !ok {
		tracked = &trackedStatus{}
		t.statuses[class] = tracked
	}

	if tracked.timer != nil {
		tracked.timer.Stop()
		tracked.timer = nil
	}
	tracked.generation++
	tracked.status = models.OperationStatus{
		Class:     class,
		Phase:     phase,
		Message:   message,
		Visible:   true,
		UpdatedAt: t.now(),
	}

	if !phase.IsTerminal() {
		return
	}

	delay := t.successDelay
	if phase == models.PhaseError {
		delay = t.errorDelay
	}
	generation := tracked.generation
	tracked.timer = time.AfterFunc(delay, func() { t.hide(class, generation) })
}

// hide returns class to idle unless a newer status was set after the timer
// was armed. A stopped timer may already be running, hence the generation
// check.
func (t *statusTracker) hide(class models.OperationClass, generation uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracked := t.statuses[class]
	if tracked == nil || tracked.generation != generation {
		return
	}

	tracked.timer = nil
	idle := models.IdleStatus(class)
	idle.UpdatedAt = t.now()
	tracked.status = idle
}
