package di

import (
	"fmt"

	"FoxJournal/internal/domain/repository"
	"FoxJournal/internal/handler/api"
	internalrepo "FoxJournal/internal/repository"
	"FoxJournal/internal/usecase"
	"FoxJournal/pkg/config"
	xhttp "FoxJournal/pkg/http"
	"FoxJournal/pkg/kv"
	applogger "FoxJournal/pkg/logger"
	"FoxJournal/pkg/metrics"
	"FoxJournal/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideStore selects and creates the key-value storage collaborator. The
// backend is fixed here, before the core is constructed; the core never sees
// the choice.
func ProvideStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Type {
	case "redis":
		store, err := kv.NewRedisStore(
			kv.WithRedisHost(cfg.Storage.Redis.Host),
			kv.WithRedisPort(cfg.Storage.Redis.Port),
			kv.WithRedisPassword(cfg.Storage.Redis.Password),
			kv.WithRedisDB(cfg.Storage.Redis.DB),
			kv.WithRedisPool(cfg.Storage.Redis.PoolSize, cfg.Storage.Redis.MinIdleConns, cfg.Storage.Redis.PoolTimeout),
			kv.WithRedisPrefix(cfg.Storage.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		return store, nil
	case "memory":
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideJournalStore creates the journal persistence layer.
func ProvideJournalStore(store kv.Store) repository.JournalStore {
	return internalrepo.NewKVJournalStore(store)
}

// ProvideJournal creates the ledger/risk aggregate.
func ProvideJournal(store repository.JournalStore, m repository.Metrics, l *applogger.Logger) *usecase.Journal {
	return usecase.NewJournal(store, m, l)
}

// ProvideStatistics creates the statistics aggregator.
func ProvideStatistics(store repository.JournalStore, m repository.Metrics) *usecase.Statistics {
	return usecase.NewStatistics(store, m)
}

// ProvideReset creates the reset coordinator.
func ProvideReset(journal *usecase.Journal, store repository.JournalStore, l *applogger.Logger) *usecase.Reset {
	return usecase.NewReset(journal, store, l)
}

// ProvideSettingsManager creates the settings manager.
func ProvideSettingsManager(store repository.JournalStore, l *applogger.Logger) *usecase.SettingsManager {
	return usecase.NewSettingsManager(store, l)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	l *applogger.Logger,
	journal *usecase.Journal,
	statistics *usecase.Statistics,
	reset *usecase.Reset,
	settings *usecase.SettingsManager,
) xhttp.Handler {
	return api.NewJournalEchoHandler(l, journal, statistics, reset, settings)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, store kv.Store, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, store, handler)
}
