package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"FoxJournal/internal/domain/models"
	"FoxJournal/internal/domain/repository"
	"FoxJournal/pkg/util"
)

// Statistics aggregates ledger entries over daily, weekly and monthly
// windows. Pure reads; the ledger is never touched.
type Statistics struct {
	store   repository.JournalStore
	metrics repository.Metrics
	now     func() time.Time
}

// NewStatistics creates the statistics aggregator.
func NewStatistics(store repository.JournalStore, metrics repository.Metrics) *Statistics {
	return &Statistics{
		store:   store,
		metrics: metrics,
		now:     time.Now,
	}
}

// Compute builds a snapshot for the period anchored at anchorDate
// (YYYY-MM-DD, empty means today). An empty window yields an all-zero
// snapshot, never an error.
func (s *Statistics) Compute(ctx context.Context, period models.Period, anchorDate string) (models.StatisticsSnapshot, error) {
	start := time.Now()
	defer func() { s.metrics.RecordLatency("statistics", time.Since(start).Seconds()) }()

	if !period.Valid() {
		return models.StatisticsSnapshot{}, models.NewValidationError("period", `must be "daily", "weekly" or "monthly"`)
	}

	anchor := util.DayOf(s.now())
	if anchorDate != "" {
		day, err := util.ParseDay(anchorDate)
		if err != nil {
			return models.StatisticsSnapshot{}, models.NewValidationError("date", "must be a YYYY-MM-DD calendar day")
		}
		anchor = day
	}

	txs, err := s.store.Transactions(ctx)
	if err != nil {
		s.metrics.RecordError("storage")
		return models.StatisticsSnapshot{}, err
	}

	return aggregate(period, anchor, txs), nil
}

// inPeriod reports whether the transaction's calendar day falls inside the
// window anchored at anchor. Weeks start on Sunday.
func inPeriod(period models.Period, anchor time.Time, tx models.Transaction) bool {
	day, err := util.ParseDay(tx.Date)
	if err != nil {
		return false
	}

	switch period {
	case models.PeriodDaily:
		return util.SameDay(day, anchor)
	case models.PeriodWeekly:
		start := util.StartOfWeek(anchor)
		end := start.AddDate(0, 0, 6)
		return !day.Before(start) && !day.After(end)
	case models.PeriodMonthly:
		return util.SameMonth(day, anchor)
	default:
		return false
	}
}

func aggregate(period models.Period, anchor time.Time, txs []models.Transaction) models.StatisticsSnapshot {
	snap := models.StatisticsSnapshot{
		Period:        period,
		AnchorDate:    util.FormatDay(anchor),
		TotalProfit:   decimal.Zero,
		TotalLoss:     decimal.Zero,
		NetProfit:     decimal.Zero,
		AverageProfit: decimal.Zero,
		AverageLoss:   decimal.Zero,
	}

	for _, tx := range txs {
		if !inPeriod(period, anchor, tx) {
			continue
		}
		snap.TransactionCount++
		switch tx.Type {
		case models.TypeProfit:
			snap.ProfitTransactions++
			snap.TotalProfit = snap.TotalProfit.Add(tx.Magnitude())
		case models.TypeLoss:
			snap.LossTransactions++
			snap.TotalLoss = snap.TotalLoss.Add(tx.Magnitude())
		}
	}

	snap.NetProfit = snap.TotalProfit.Sub(snap.TotalLoss)
	if snap.ProfitTransactions > 0 {
		snap.AverageProfit = snap.TotalProfit.Div(decimal.NewFromInt(int64(snap.ProfitTransactions)))
	}
	if snap.LossTransactions > 0 {
		snap.AverageLoss = snap.TotalLoss.Div(decimal.NewFromInt(int64(snap.LossTransactions)))
	}
	if snap.TransactionCount > 0 {
		snap.ProfitRate = float64(snap.ProfitTransactions) / float64(snap.TransactionCount) * 100
	}

	return snap
}
