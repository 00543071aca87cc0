package usecase

import (
	"context"

	"FoxJournal/internal/domain/models"
	"FoxJournal/internal/domain/repository"
	applogger "FoxJournal/pkg/logger"
)

// SettingsManager reads and merges the singleton preferences record.
type SettingsManager struct {
	store  repository.JournalStore
	logger *applogger.Logger
}

// NewSettingsManager creates the settings manager.
func NewSettingsManager(store repository.JournalStore, l *applogger.Logger) *SettingsManager {
	return &SettingsManager{store: store, logger: l}
}

// Get returns the stored settings, or the defaults when nothing is stored.
func (m *SettingsManager) Get(ctx context.Context) (models.Settings, error) {
	return m.store.Settings(ctx)
}

// Update merges the patch into current settings and persists the result.
func (m *SettingsManager) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	settings, err := m.store.Settings(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	if patch.Currency != nil {
		settings.Currency = *patch.Currency
	}
	if patch.RiskAlertEnabled != nil {
		settings.RiskAlertEnabled = *patch.RiskAlertEnabled
	}
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.AutoBackup != nil {
		settings.AutoBackup = *patch.AutoBackup
	}
	if patch.DataRetentionDays != nil {
		settings.DataRetentionDays = *patch.DataRetentionDays
	}

	if err := m.store.SaveSettings(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	m.logger.Debug("settings updated")
	return settings, nil
}
