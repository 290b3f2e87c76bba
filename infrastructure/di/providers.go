// Package di assembles the application object graph.
package di

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"teachback-backend/application/commands"
	cmdbus "teachback-backend/application/commands/bus"
	cmdhandlers "teachback-backend/application/commands/handlers"
	"teachback-backend/application/ports"
	"teachback-backend/application/queries"
	querybus "teachback-backend/application/queries/bus"
	queryhandlers "teachback-backend/application/queries/handlers"
	appservices "teachback-backend/application/services"
	domaincfg "teachback-backend/domain/config"
	"teachback-backend/domain/services"
	"teachback-backend/infrastructure/ai"
	"teachback-backend/infrastructure/analysis"
	"teachback-backend/infrastructure/config"
	dynamostore "teachback-backend/infrastructure/persistence/dynamodb"
	"teachback-backend/infrastructure/persistence/memory"
	"teachback-backend/interfaces/http/rest"
	"teachback-backend/interfaces/http/rest/handlers"
	"teachback-backend/pkg/auth"
	pkgerrors "teachback-backend/pkg/errors"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Container holds the assembled application
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Router http.Handler
}

// ProvideLogger builds the zap logger for the environment
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig loads the business rules for the environment
func ProvideDomainConfig(cfg *config.Config) *domaincfg.DomainConfig {
	return domaincfg.LoadDomainConfig(cfg.Environment)
}

// ProvideCache builds the in-memory cache
func ProvideCache() ports.Cache {
	return NewInMemoryCache()
}

// ProvideSessionRepository selects the configured session store
func ProvideSessionRepository(cfg *config.Config, logger *zap.Logger) (ports.SessionRepository, error) {
	if cfg.SessionStore == config.StoreDynamoDB {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("failed to load AWS config", err)
		}
		client := awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
			if cfg.DynamoDBEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
			}
		})
		return dynamostore.NewSessionRepository(client, cfg.DynamoDBTable, logger), nil
	}
	return memory.NewSessionRepository(), nil
}

// ProvideWorkspaceRepository builds the live workspace store
func ProvideWorkspaceRepository(domainCfg *domaincfg.DomainConfig) ports.WorkspaceRepository {
	return memory.NewWorkspaceRepository(domainCfg)
}

// ProvideUserRepository builds the account store
func ProvideUserRepository() ports.UserRepository {
	return memory.NewUserRepository()
}

// ProvideChatCompleter picks the OpenAI client when a key is configured
// and the offline stub otherwise
func ProvideChatCompleter(cfg *config.Config, logger *zap.Logger) ports.ChatCompleter {
	if cfg.ChatEnabled {
		return ai.NewChatClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ChatTimeout, logger)
	}
	logger.Warn("no OPENAI_API_KEY set, using stub chat completer")
	return ai.NewStubClient()
}

// ProvideAnalysisProvider builds the analysis provider
func ProvideAnalysisProvider(cfg *config.Config) ports.AnalysisProvider {
	return analysis.NewDatasetProvider(cfg.AnalysisDelay)
}

// ProvideMapViewService builds the map traversal service
func ProvideMapViewService() *services.MapViewService {
	return services.NewMapViewService()
}

// ProvideDashboardService builds the dashboard aggregation service
func ProvideDashboardService() *services.DashboardService {
	return services.NewDashboardService()
}

// ProvideAuthService builds the signup/login service
func ProvideAuthService(users ports.UserRepository, generator *auth.JWTGenerator, logger *zap.Logger) *appservices.AuthService {
	return appservices.NewAuthService(users, generator, logger)
}

// ProvideJWTGenerator builds the token issuer
func ProvideJWTGenerator(cfg *config.Config) *auth.JWTGenerator {
	return auth.NewJWTGenerator(cfg.JWTSecret, cfg.TokenTTL)
}

// ProvideJWTValidator builds the token verifier
func ProvideJWTValidator(cfg *config.Config) *auth.JWTValidator {
	return auth.NewJWTValidator(cfg.JWTSecret)
}

// ProvideErrorHandler builds the shared HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, !cfg.IsProduction())
}

// ProvideCommandBus registers every command handler
func ProvideCommandBus(
	workspaces ports.WorkspaceRepository,
	sessions ports.SessionRepository,
	analysisProvider ports.AnalysisProvider,
	completer ports.ChatCompleter,
	cache ports.Cache,
	mapView *services.MapViewService,
	logger *zap.Logger,
) (*cmdbus.CommandBus, error) {
	bus := cmdbus.NewCommandBus()
	bus.Use(cmdbus.LoggingMiddleware(logger))

	registrations := []struct {
		cmd     cmdbus.Command
		handler cmdbus.CommandHandler
	}{
		{commands.StartThemeCommand{}, cmdhandlers.NewStartThemeHandler(workspaces, analysisProvider, logger)},
		{commands.SendMessageCommand{}, cmdhandlers.NewSendMessageHandler(workspaces, completer, logger)},
		{commands.AnalyzeConversationCommand{}, cmdhandlers.NewAnalyzeConversationHandler(workspaces, sessions, analysisProvider, cache, logger)},
		{commands.UpdateStudyStatusCommand{}, cmdhandlers.NewUpdateStudyStatusHandler(sessions, cache, logger)},
		{commands.ContinueSessionCommand{}, cmdhandlers.NewContinueSessionHandler(workspaces, sessions, logger)},
		{commands.SelectMapNodeCommand{}, cmdhandlers.NewSelectMapNodeHandler(workspaces, sessions, mapView, logger)},
		{commands.ResetMapCommand{}, cmdhandlers.NewResetMapHandler(workspaces)},
	}
	for _, reg := range registrations {
		if err := bus.Register(reg.cmd, reg.handler); err != nil {
			return nil, err
		}
	}
	return bus, nil
}

// ProvideQueryBus registers every query handler
func ProvideQueryBus(
	workspaces ports.WorkspaceRepository,
	sessions ports.SessionRepository,
	cache ports.Cache,
	mapView *services.MapViewService,
	dashboard *services.DashboardService,
) (*querybus.QueryBus, error) {
	bus := querybus.NewQueryBus()

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetConversationQuery{}, queryhandlers.NewGetConversationHandler(workspaces)},
		{queries.ListSessionsQuery{}, queryhandlers.NewListSessionsHandler(sessions)},
		{queries.GetSessionQuery{}, queryhandlers.NewGetSessionHandler(sessions)},
		{queries.GetWeakPointsQuery{}, queryhandlers.NewGetWeakPointsHandler(sessions)},
		{queries.GetUnderstandingMapQuery{}, queryhandlers.NewGetUnderstandingMapHandler(workspaces, sessions, mapView)},
		{queries.GetDashboardQuery{}, queryhandlers.NewGetDashboardHandler(sessions, dashboard, cache)},
	}
	for _, reg := range registrations {
		if err := bus.Register(reg.query, reg.handler); err != nil {
			return nil, err
		}
	}
	return bus, nil
}

// ProvideRouter assembles the HTTP surface
func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	commandBus *cmdbus.CommandBus,
	queryBus *querybus.QueryBus,
	authService *appservices.AuthService,
	validator *auth.JWTValidator,
	errHandler *pkgerrors.ErrorHandler,
) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	userLimiter := auth.NewUserRateLimiter(cfg.UserRateLimit, cfg.UserRateWindow)

	return rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		JWTValidator:   validator,
		UserLimiter:    userLimiter,
		AllowedOrigins: cfg.AllowedOrigins,

		Auth:      handlers.NewAuthHandler(authService, ipLimiter, errHandler, logger),
		Chat:      handlers.NewChatHandler(commandBus, queryBus, errHandler),
		Session:   handlers.NewSessionHandler(commandBus, queryBus, errHandler),
		WeakPoint: handlers.NewWeakPointHandler(commandBus, queryBus, errHandler),
		Map:       handlers.NewMapHandler(commandBus, queryBus, errHandler),
		Dashboard: handlers.NewDashboardHandler(queryBus, errHandler),
		Health:    handlers.NewHealthHandler(Version),
	})
}
