package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"FoxJournal/internal/domain/models"
	domrepo "FoxJournal/internal/domain/repository"
	"FoxJournal/internal/repository"
	"FoxJournal/pkg/kv"
	applogger "FoxJournal/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordTransaction(string)      {}
func (nopMetrics) RecordAppendBlocked()          {}
func (nopMetrics) RecordRiskActivation()         {}
func (nopMetrics) RecordAutoReset()              {}
func (nopMetrics) RecordError(string)            {}
func (nopMetrics) RecordConsecutiveLosses(int)   {}
func (nopMetrics) RecordLatency(string, float64) {}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "disabled", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

// testClock is a settable clock shared by the usecases under test.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestJournal(t *testing.T) (*Journal, domrepo.JournalStore, *testClock) {
	t.Helper()
	store := repository.NewKVJournalStore(kv.NewMemoryStore())
	clock := &testClock{t: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)}
	j := NewJournal(store, nopMetrics{}, testLogger(t))
	j.now = clock.Now
	return j, store, clock
}

func candidate(date string, amount float64, txType models.TransactionType) models.TransactionCandidate {
	return models.TransactionCandidate{
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Type:   txType,
	}
}

func mustAppend(t *testing.T, j *Journal, cand models.TransactionCandidate) models.Transaction {
	t.Helper()
	tx, err := j.Append(context.Background(), cand)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	return tx
}

// failingStore wraps a JournalStore and fails risk-state writes on demand.
type failingStore struct {
	domrepo.JournalStore
	failRiskSave bool
}

var errBoom = errors.New("storage down")

func (s *failingStore) SaveRiskState(ctx context.Context, state models.RiskState) error {
	if s.failRiskSave {
		return errBoom
	}
	return s.JournalStore.SaveRiskState(ctx, state)
}
