package repository

import (
	"context"
	"time"

	"FoxJournal/internal/domain/models"
)

// JournalStore persists the four journal records behind the key-value
// collaborator. Absent records come back as their default construction,
// never as an error.
type JournalStore interface {
	Transactions(ctx context.Context) ([]models.Transaction, error)
	SaveTransactions(ctx context.Context, txs []models.Transaction) error

	RiskState(ctx context.Context) (models.RiskState, error)
	SaveRiskState(ctx context.Context, state models.RiskState) error

	Settings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error

	LastResetTime(ctx context.Context) (*time.Time, error)
	SaveLastResetTime(ctx context.Context, t time.Time) error

	Health(ctx context.Context) error
}

// Metrics records operational counters for the journal core.
type Metrics interface {
	RecordTransaction(txType string)
	RecordAppendBlocked()
	RecordRiskActivation()
	RecordAutoReset()
	RecordError(kind string)
	RecordConsecutiveLosses(n int)
	RecordLatency(op string, seconds float64)
}
