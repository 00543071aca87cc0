package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"FoxJournal/internal/domain/models"
	"FoxJournal/internal/repository"
	"FoxJournal/pkg/kv"
)

func newTestStatistics(t *testing.T) (*Statistics, *Journal, *testClock) {
	t.Helper()
	store := repository.NewKVJournalStore(kv.NewMemoryStore())
	clock := &testClock{t: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)}

	j := NewJournal(store, nopMetrics{}, testLogger(t))
	j.now = clock.Now

	s := NewStatistics(store, nopMetrics{})
	s.now = clock.Now
	return s, j, clock
}

func TestComputeEmptyLedgerAllZero(t *testing.T) {
	s, _, _ := newTestStatistics(t)

	for _, period := range []models.Period{models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly} {
		snap, err := s.Compute(context.Background(), period, "")
		if err != nil {
			t.Fatalf("compute %s: %v", period, err)
		}
		if snap.TransactionCount != 0 || snap.ProfitRate != 0 {
			t.Errorf("%s: expected all-zero snapshot, got %+v", period, snap)
		}
		if !snap.TotalProfit.IsZero() || !snap.TotalLoss.IsZero() || !snap.NetProfit.IsZero() {
			t.Errorf("%s: expected zero totals, got %+v", period, snap)
		}
		if !snap.AverageProfit.IsZero() || !snap.AverageLoss.IsZero() {
			t.Errorf("%s: averages must be zero on empty input, got %+v", period, snap)
		}
	}
}

func TestComputeDaily(t *testing.T) {
	s, j, _ := newTestStatistics(t)

	mustAppend(t, j, candidate("2024-01-15", 100, models.TypeProfit))
	mustAppend(t, j, candidate("2024-01-15", 50, models.TypeLoss))
	mustAppend(t, j, candidate("2024-01-14", 999, models.TypeProfit)) // outside window

	snap, err := s.Compute(context.Background(), models.PeriodDaily, "2024-01-15")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !snap.TotalProfit.Equal(decimal.NewFromInt(100)) {
		t.Errorf("totalProfit = %s, want 100", snap.TotalProfit)
	}
	if !snap.TotalLoss.Equal(decimal.NewFromInt(50)) {
		t.Errorf("totalLoss = %s, want 50", snap.TotalLoss)
	}
	if !snap.NetProfit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("netProfit = %s, want 50", snap.NetProfit)
	}
	if snap.TransactionCount != 2 {
		t.Errorf("transactionCount = %d, want 2", snap.TransactionCount)
	}
	if snap.ProfitRate != 50 {
		t.Errorf("profitRate = %v, want 50", snap.ProfitRate)
	}
	if snap.AnchorDate != "2024-01-15" {
		t.Errorf("anchorDate = %s", snap.AnchorDate)
	}
}

func TestComputeDailyDefaultsToToday(t *testing.T) {
	s, j, _ := newTestStatistics(t)

	mustAppend(t, j, candidate("2024-01-15", 10, models.TypeProfit))

	snap, err := s.Compute(context.Background(), models.PeriodDaily, "")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TransactionCount != 1 || snap.AnchorDate != "2024-01-15" {
		t.Fatalf("expected today's entry, got %+v", snap)
	}
}

func TestComputeWeeklySundayStart(t *testing.T) {
	s, j, _ := newTestStatistics(t)

	// Anchor 2024-01-17 (Wednesday): week runs Sun 2024-01-14 .. Sat 2024-01-20.
	mustAppend(t, j, candidate("2024-01-14", 10, models.TypeProfit)) // first day
	mustAppend(t, j, candidate("2024-01-20", 20, models.TypeProfit)) // last day
	mustAppend(t, j, candidate("2024-01-13", 30, models.TypeProfit)) // Saturday before
	mustAppend(t, j, candidate("2024-01-21", 40, models.TypeProfit)) // Sunday after

	snap, err := s.Compute(context.Background(), models.PeriodWeekly, "2024-01-17")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TransactionCount != 2 {
		t.Fatalf("expected 2 entries inside the week, got %d", snap.TransactionCount)
	}
	if !snap.TotalProfit.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("totalProfit = %s, want 30", snap.TotalProfit)
	}
}

func TestComputeMonthly(t *testing.T) {
	s, j, _ := newTestStatistics(t)

	mustAppend(t, j, candidate("2024-01-01", 10, models.TypeProfit))
	mustAppend(t, j, candidate("2024-01-31", 5, models.TypeLoss))
	mustAppend(t, j, candidate("2023-12-31", 99, models.TypeProfit))
	mustAppend(t, j, candidate("2024-02-01", 99, models.TypeProfit))

	snap, err := s.Compute(context.Background(), models.PeriodMonthly, "2024-01-15")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TransactionCount != 2 {
		t.Fatalf("expected 2 entries inside January, got %d", snap.TransactionCount)
	}
	if !snap.NetProfit.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("netProfit = %s, want 5", snap.NetProfit)
	}
}

func TestComputeAverages(t *testing.T) {
	s, j, _ := newTestStatistics(t)

	mustAppend(t, j, candidate("2024-01-15", 100, models.TypeProfit))
	mustAppend(t, j, candidate("2024-01-15", 50, models.TypeProfit))
	mustAppend(t, j, candidate("2024-01-15", 30, models.TypeLoss))

	snap, err := s.Compute(context.Background(), models.PeriodDaily, "2024-01-15")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !snap.AverageProfit.Equal(decimal.NewFromInt(75)) {
		t.Errorf("averageProfit = %s, want 75", snap.AverageProfit)
	}
	if !snap.AverageLoss.Equal(decimal.NewFromInt(30)) {
		t.Errorf("averageLoss = %s, want 30", snap.AverageLoss)
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	s, _, _ := newTestStatistics(t)

	var verr *models.ValidationError
	if _, err := s.Compute(context.Background(), "yearly", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for period, got %v", err)
	}
	if _, err := s.Compute(context.Background(), models.PeriodDaily, "01-15-2024"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for anchor date, got %v", err)
	}
}

func TestComputeDoesNotMutateLedger(t *testing.T) {
	s, j, _ := newTestStatistics(t)

	mustAppend(t, j, candidate("2024-01-15", 100, models.TypeProfit))
	before, _ := j.List(context.Background(), models.TransactionFilter{})

	if _, err := s.Compute(context.Background(), models.PeriodMonthly, ""); err != nil {
		t.Fatalf("compute: %v", err)
	}

	after, _ := j.List(context.Background(), models.TransactionFilter{})
	if len(before) != len(after) {
		t.Fatal("compute must not mutate the ledger")
	}
}
