package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-loyalty-keeper/internal/adapter"
	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

const (
	defaultFetchConcurrency = 8
	defaultPageSize         = 5
)

type recordCache struct {
	ledger      adapter.LedgerReader
	concurrency int
	observer    RefreshObserver
	logger      *logger.Logger

	mu          sync.RWMutex
	records     []models.EncryptedRecord
	index       map[string]int
	refreshedAt time.Time
}

// NewRecordCache returns an empty cache backed by ledger. Record details are
// fetched with at most cfg.FetchConcurrency requests in flight. observer may
// be nil.
func NewRecordCache(ledger adapter.LedgerReader, cfg config.ClientCache, observer RefreshObserver, logger *logger.Logger) RecordCache {
	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = defaultFetchConcurrency
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &recordCache{
		ledger:      ledger,
		concurrency: concurrency,
		observer:    observer,
		logger:      logger,
		index:       make(map[string]int),
	}
}

func (c *recordCache) Refresh(ctx context.Context) error {
	start := time.Now()

	records, skipped, err := c.load(ctx)
	c.observer.ObserveRefresh(len(records), skipped, time.Since(start), err)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(records))
	for i, record := range records {
		index[record.ID] = i
	}

	c.mu.Lock()
	c.records = records
	c.index = index
	c.refreshedAt = time.Now()
	c.mu.Unlock()

	c.logger.Debug().
		Int("loaded", len(records)).
		Int("skipped", skipped).
		Dur("elapsed", time.Since(start)).
		Msg("record cache refreshed")
	return nil
}

// load fetches every record detail concurrently and returns them in listing
// order without the skipped ones.
func (c *recordCache) load(ctx context.Context) ([]models.EncryptedRecord, int, error) {
	ids, err := c.ledger.ListRecordIDs(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list record ids: %w", err)
	}

	slots := make([]*models.EncryptedRecord, len(ids))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			record, err := c.ledger.GetRecord(ctx, id)
			if err != nil {
				c.logger.Warn().
					Err(fmt.Errorf("%w: %w", ErrPartialLoad, err)).
					Str("record_id", id).
					Msg("skipping record")
				return nil
			}

			record.ID = id
			sanitized := record.Sanitized()
			slots[i] = &sanitized
			return nil
		})
	}
	_ = g.Wait()

	// A cancelled refresh would otherwise look like a ledger with every
	// record skipped.
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("load record details: %w", err)
	}

	records := make([]models.EncryptedRecord, 0, len(ids))
	for _, slot := range slots {
		if slot != nil {
			records = append(records, *slot)
		}
	}

	return records, len(ids) - len(records), nil
}

func (c *recordCache) Snapshot() []models.EncryptedRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]models.EncryptedRecord, len(c.records))
	copy(snapshot, c.records)
	return snapshot
}

func (c *recordCache) Get(id string) (models.EncryptedRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return c.records[i], nil
}

func (c *recordCache) Search(term string) []models.EncryptedRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make([]models.EncryptedRecord, 0, len(c.records))
	for _, record := range c.records {
		if record.Matches(term) {
			found = append(found, record)
		}
	}
	return found
}

func (c *recordCache) Page(term string, page, perPage int) models.RecordPage {
	if perPage < 1 {
		perPage = defaultPageSize
	}

	found := c.Search(term)
	total := len(found)
	totalPages := (total + perPage - 1) / perPage

	page = min(page, totalPages)
	page = max(page, 1)

	from := min((page-1)*perPage, total)
	to := min(from+perPage, total)

	return models.RecordPage{
		Items:      found[from:to],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

func (c *recordCache) Stats(owner string) models.RecordStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	owner = strings.TrimSpace(owner)
	stats := models.RecordStats{Total: len(c.records)}
	for _, record := range c.records {
		if record.IsVerified {
			stats.Verified++
		}
		if owner != "" && strings.EqualFold(record.Creator, owner) {
			stats.Mine++
		}
	}
	return stats
}

func (c *recordCache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

type nopObserver struct{}

func (nopObserver) ObserveRefresh(int, int, time.Duration, error) {}

func (nopObserver) ObserveOperation(models.OperationClass, models.Outcome, time.Duration) {}

func (nopObserver) ObserveCoalescedReveal() {}
