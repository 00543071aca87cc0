package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"FoxJournal/internal/domain/models"
	"FoxJournal/internal/domain/repository"
	applogger "FoxJournal/pkg/logger"
	"FoxJournal/pkg/util"
)

// Journal owns the ledger and the risk state as one aggregate. Every
// read-modify-write sequence (risk guard, append, risk transition) runs
// under one mutex so concurrent submissions cannot interleave around the
// loss threshold.
type Journal struct {
	mu      sync.Mutex
	store   repository.JournalStore
	metrics repository.Metrics
	logger  *applogger.Logger
	now     func() time.Time
}

// NewJournal creates the journal aggregate.
func NewJournal(store repository.JournalStore, metrics repository.Metrics, l *applogger.Logger) *Journal {
	return &Journal{
		store:   store,
		metrics: metrics,
		logger:  l,
		now:     time.Now,
	}
}

func validateCandidate(cand models.TransactionCandidate) error {
	if _, err := util.ParseDay(cand.Date); err != nil {
		return models.NewValidationError("date", "must be a YYYY-MM-DD calendar day")
	}
	if !cand.Type.Valid() {
		return models.NewValidationError("type", `must be "profit" or "loss"`)
	}
	if !cand.Amount.Abs().IsPositive() {
		return models.NewValidationError("amount", "must be greater than 0")
	}
	return nil
}

// Append validates the candidate, applies the cooling-off guard and persists
// the entry plus the next risk state. The guard sees the post-auto-reset
// state, so a block from yesterday never refuses today's first entry.
func (j *Journal) Append(ctx context.Context, cand models.TransactionCandidate) (models.Transaction, error) {
	start := time.Now()
	defer func() { j.metrics.RecordLatency("append", time.Since(start).Seconds()) }()

	if err := validateCandidate(cand); err != nil {
		j.metrics.RecordError("validation")
		return models.Transaction{}, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	risk, err := j.refreshRiskLocked(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	if risk.IsInRisk {
		j.metrics.RecordAppendBlocked()
		return models.Transaction{}, models.ErrRiskActive
	}

	txs, err := j.store.Transactions(ctx)
	if err != nil {
		j.metrics.RecordError("storage")
		return models.Transaction{}, err
	}

	now := j.now()
	amount := cand.Amount.Abs()
	if cand.Type == models.TypeLoss {
		amount = amount.Neg()
	}
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Date:        cand.Date,
		Amount:      amount,
		Type:        cand.Type,
		Description: cand.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := j.store.SaveTransactions(ctx, append(txs, tx)); err != nil {
		j.metrics.RecordError("storage")
		return models.Transaction{}, err
	}

	next, activated := nextRiskState(risk, cand.Type, now)
	if err := j.store.SaveRiskState(ctx, next); err != nil {
		// Ledger append and risk update are one logical write. Undo the
		// first so a half-applied append is never observable.
		if rbErr := j.store.SaveTransactions(ctx, txs); rbErr != nil {
			j.logger.Error("rollback after risk write failure", applogger.Error(rbErr))
		}
		j.metrics.RecordError("storage")
		return models.Transaction{}, err
	}

	j.metrics.RecordTransaction(string(tx.Type))
	j.metrics.RecordConsecutiveLosses(next.ConsecutiveLosses)
	if activated {
		j.metrics.RecordRiskActivation()
		j.logger.Warn("cooling-off period activated",
			applogger.Int("consecutive_losses", next.ConsecutiveLosses))
	}

	return tx, nil
}

// List returns transactions matching the filter, preserving entry order.
func (j *Journal) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	txs, err := j.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Update merges the patch into the identified entry and refreshes its update
// timestamp. Changing type or amount re-normalizes the stored sign.
func (j *Journal) Update(ctx context.Context, id string, patch models.TransactionPatch) (models.Transaction, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	txs, err := j.store.Transactions(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	idx := -1
	for i := range txs {
		if txs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Transaction{}, models.ErrNotFound
	}

	tx := txs[idx]
	if patch.Date != nil {
		if _, err := util.ParseDay(*patch.Date); err != nil {
			return models.Transaction{}, models.NewValidationError("date", "must be a YYYY-MM-DD calendar day")
		}
		tx.Date = *patch.Date
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return models.Transaction{}, models.NewValidationError("type", `must be "profit" or "loss"`)
		}
		tx.Type = *patch.Type
	}
	if patch.Amount != nil {
		if !patch.Amount.Abs().IsPositive() {
			return models.Transaction{}, models.NewValidationError("amount", "must be greater than 0")
		}
		tx.Amount = *patch.Amount
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}

	// Re-apply sign normalization so amount and type always agree.
	tx.Amount = tx.Amount.Abs()
	if tx.Type == models.TypeLoss {
		tx.Amount = tx.Amount.Neg()
	}
	tx.UpdatedAt = j.now()

	txs[idx] = tx
	if err := j.store.SaveTransactions(ctx, txs); err != nil {
		j.metrics.RecordError("storage")
		return models.Transaction{}, err
	}
	return tx, nil
}

// Remove deletes the identified entry.
func (j *Journal) Remove(ctx context.Context, id string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	txs, err := j.store.Transactions(ctx)
	if err != nil {
		return err
	}

	out := txs[:0:0]
	for _, tx := range txs {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	if len(out) == len(txs) {
		return models.ErrNotFound
	}

	if err := j.store.SaveTransactions(ctx, out); err != nil {
		j.metrics.RecordError("storage")
		return err
	}
	return nil
}

// RiskState applies the lazy day-boundary check, persists a reset when due
// and returns the resulting view with the rolling countdown attached.
func (j *Journal) RiskState(ctx context.Context) (models.RiskStateView, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	state, err := j.refreshRiskLocked(ctx)
	if err != nil {
		return models.RiskStateView{}, err
	}

	return models.RiskStateView{
		RiskState:        state,
		RemainingCoolOff: remainingCoolOff(state, j.now()),
	}, nil
}

// ResetRisk manually drops back to normal, keeping LastRiskDate.
func (j *Journal) ResetRisk(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	state, err := j.store.RiskState(ctx)
	if err != nil {
		return err
	}
	if err := j.store.SaveRiskState(ctx, clearRisk(state)); err != nil {
		j.metrics.RecordError("storage")
		return err
	}
	j.metrics.RecordConsecutiveLosses(0)
	j.logger.Info("risk state reset manually")
	return nil
}

// Clear empties the ledger and fully zeroes the risk state, LastRiskDate
// included. Only the reset coordinator calls this.
func (j *Journal) Clear(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.store.SaveTransactions(ctx, []models.Transaction{}); err != nil {
		j.metrics.RecordError("storage")
		return err
	}
	if err := j.store.SaveRiskState(ctx, models.RiskState{}); err != nil {
		j.metrics.RecordError("storage")
		return err
	}
	j.metrics.RecordConsecutiveLosses(0)
	return nil
}

// Count returns the number of ledger entries.
func (j *Journal) Count(ctx context.Context) (int, error) {
	txs, err := j.store.Transactions(ctx)
	if err != nil {
		return 0, err
	}
	return len(txs), nil
}

func (j *Journal) refreshRiskLocked(ctx context.Context) (models.RiskState, error) {
	state, err := j.store.RiskState(ctx)
	if err != nil {
		return models.RiskState{}, err
	}

	if !autoResetDue(state, j.now()) {
		return state, nil
	}

	cleared := clearRisk(state)
	if err := j.store.SaveRiskState(ctx, cleared); err != nil {
		j.metrics.RecordError("storage")
		return models.RiskState{}, err
	}
	j.metrics.RecordAutoReset()
	j.metrics.RecordConsecutiveLosses(0)
	j.logger.Info("cooling-off period ended at day boundary")
	return cleared, nil
}
