package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FoxJournal/internal/domain/models"
	"FoxJournal/pkg/kv"
)

// Logical keys of the journal records inside the key-value collaborator.
const (
	KeyTransactions  = "transactions"
	KeyRiskState     = "risk_state"
	KeySettings      = "settings"
	KeyLastResetTime = "last_reset_time"
)

// KVJournalStore implements domain/repository.JournalStore over a kv.Store.
// Missing keys resolve to explicit defaults rather than propagating as nulls.
type KVJournalStore struct {
	store kv.Store
}

// NewKVJournalStore creates a journal store over the given key-value store.
func NewKVJournalStore(store kv.Store) *KVJournalStore {
	return &KVJournalStore{store: store}
}

func (s *KVJournalStore) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.store.Get(ctx, KeyTransactions, &txs); err != nil {
		if errors.Is(err, kv.ErrKeyMiss) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

func (s *KVJournalStore) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	if txs == nil {
		txs = []models.Transaction{}
	}
	if err := s.store.Set(ctx, KeyTransactions, txs); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}

func (s *KVJournalStore) RiskState(ctx context.Context) (models.RiskState, error) {
	var state models.RiskState
	if err := s.store.Get(ctx, KeyRiskState, &state); err != nil {
		if errors.Is(err, kv.ErrKeyMiss) {
			return models.RiskState{}, nil
		}
		return models.RiskState{}, fmt.Errorf("load risk state: %w", err)
	}
	return state, nil
}

func (s *KVJournalStore) SaveRiskState(ctx context.Context, state models.RiskState) error {
	if err := s.store.Set(ctx, KeyRiskState, state); err != nil {
		return fmt.Errorf("save risk state: %w", err)
	}
	return nil
}

func (s *KVJournalStore) Settings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	if err := s.store.Get(ctx, KeySettings, &settings); err != nil {
		if errors.Is(err, kv.ErrKeyMiss) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func (s *KVJournalStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	if err := s.store.Set(ctx, KeySettings, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *KVJournalStore) LastResetTime(ctx context.Context) (*time.Time, error) {
	var t time.Time
	if err := s.store.Get(ctx, KeyLastResetTime, &t); err != nil {
		if errors.Is(err, kv.ErrKeyMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("load last reset time: %w", err)
	}
	return &t, nil
}

func (s *KVJournalStore) SaveLastResetTime(ctx context.Context, t time.Time) error {
	if err := s.store.Set(ctx, KeyLastResetTime, t); err != nil {
		return fmt.Errorf("save last reset time: %w", err)
	}
	return nil
}

func (s *KVJournalStore) Health(ctx context.Context) error {
	return s.store.Health(ctx)
}
