//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"FoxJournal/pkg/config"
	"FoxJournal/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure
		ProvideLogger,
		ProvideStore,
		ProvideMetrics,

		// Persistence
		ProvideJournalStore,

		// Use cases
		ProvideJournal,
		ProvideStatistics,
		ProvideReset,
		ProvideSettingsManager,

		// Transport
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
