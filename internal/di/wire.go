//go:build wireinject
// +build wireinject

package di

import (
	"AstroCore/pkg/config"
	"AstroCore/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Engines
		ProvideHousesCalculator,
		ProvideEphemerisSource,
		ProvideTransitCalculator,
		ProvideScoringEngine,
		ProvideInsightGenerator,
		ProvideCache,

		// Use case and transport
		ProvideAggregator,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
