package usecase

import (
	"context"
	"time"

	"FoxJournal/internal/domain/models"
	"FoxJournal/internal/domain/repository"
	applogger "FoxJournal/pkg/logger"
)

// ConfirmationToken is the fixed literal a client must echo to authorize a
// full data reset. Part of the protocol, not configurable.
const ConfirmationToken = "RESET_ALL_DATA"

// Reset zeroes the whole system as one logical operation and serves the
// composite overview.
type Reset struct {
	journal *Journal
	store   repository.JournalStore
	logger  *applogger.Logger
	now     func() time.Time
}

// NewReset creates the reset coordinator.
func NewReset(journal *Journal, store repository.JournalStore, l *applogger.Logger) *Reset {
	return &Reset{
		journal: journal,
		store:   store,
		logger:  l,
		now:     time.Now,
	}
}

// ResetAll clears the ledger, the risk state and the settings, then records
// the reset instant. A wrong confirmation code fails before any mutation.
func (r *Reset) ResetAll(ctx context.Context, confirmCode string) (time.Time, error) {
	if confirmCode != ConfirmationToken {
		return time.Time{}, models.ErrInvalidConfirmation
	}

	if err := r.journal.Clear(ctx); err != nil {
		return time.Time{}, err
	}
	if err := r.store.SaveSettings(ctx, models.DefaultSettings()); err != nil {
		return time.Time{}, err
	}

	resetAt := r.now()
	if err := r.store.SaveLastResetTime(ctx, resetAt); err != nil {
		return time.Time{}, err
	}

	r.logger.Info("all journal data reset to initial state")
	return resetAt, nil
}

// LastResetTime returns the audit marker of the most recent full reset, or
// nil if none happened.
func (r *Reset) LastResetTime(ctx context.Context) (*time.Time, error) {
	return r.store.LastResetTime(ctx)
}

// Overview assembles the read-only system view. The risk portion goes
// through the journal so the day-boundary check is applied first.
func (r *Reset) Overview(ctx context.Context) (models.SystemOverview, error) {
	riskView, err := r.journal.RiskState(ctx)
	if err != nil {
		return models.SystemOverview{}, err
	}

	count, err := r.journal.Count(ctx)
	if err != nil {
		return models.SystemOverview{}, err
	}

	settings, err := r.store.Settings(ctx)
	if err != nil {
		return models.SystemOverview{}, err
	}

	lastReset, err := r.store.LastResetTime(ctx)
	if err != nil {
		return models.SystemOverview{}, err
	}

	return models.SystemOverview{
		TransactionCount: count,
		RiskState:        riskView,
		Settings:         settings,
		LastResetTime:    lastReset,
	}, nil
}
