//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"teachback-backend/infrastructure/config"
)

// InitializeContainer builds the full application object graph
func InitializeContainer() (*Container, error) {
	wire.Build(
		config.Load,
		ProvideLogger,
		ProvideDomainConfig,
		ProvideCache,
		ProvideSessionRepository,
		ProvideWorkspaceRepository,
		ProvideUserRepository,
		ProvideChatCompleter,
		ProvideAnalysisProvider,
		ProvideMapViewService,
		ProvideDashboardService,
		ProvideAuthService,
		ProvideJWTGenerator,
		ProvideJWTValidator,
		ProvideErrorHandler,
		ProvideCommandBus,
		ProvideQueryBus,
		ProvideRouter,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}
