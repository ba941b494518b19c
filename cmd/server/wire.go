//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Mukunt07/subramaniya-mess/internal/app"
	"github.com/Mukunt07/subramaniya-mess/internal/conf"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/limiter"
	"github.com/Mukunt07/subramaniya-mess/internal/logger"
	"github.com/Mukunt07/subramaniya-mess/internal/logic"
	http_middleware "github.com/Mukunt07/subramaniya-mess/internal/middleware/http"
	"github.com/Mukunt07/subramaniya-mess/internal/provider"
	"github.com/Mukunt07/subramaniya-mess/internal/service"
	"github.com/Mukunt07/subramaniya-mess/internal/worker"
	"github.com/Mukunt07/subramaniya-mess/pkg/snowflake"
)

var baseProviders = wire.NewSet(
	wire.FieldsOf(new(*conf.AppConfig), "MongodbConfig", "WorkerConfig", "RabbitMQConfig", "AdminConfig", "RedisConfig", "RateLimiterConfig"),
	provider.ProvideAppMode,
	logger.NewLogger,
	mongodb.NewMongoDB,
	provider.ProvideDatabase,
	provider.ProvideMachineID,
	provider.ProvideActivityEventTopic,
	provider.ProvideTransactionManager,
	provider.ProvideJwtGenerator,
	provider.ProvideRedisNamespace,
	provider.ProvideRedisClient,
	provider.ProvideMQPublisher,
	limiter.NewManager,
	snowflake.NewGenerator,
	mongodb.NewMenuItemsDAO,
	wire.Bind(new(repository.MenuItemsRepository), new(*mongodb.MenuItemsDAO)),
	mongodb.NewMenuTemplatesDAO,
	wire.Bind(new(repository.MenuTemplatesRepository), new(*mongodb.MenuTemplatesDAO)),
	mongodb.NewBillsDAO,
	wire.Bind(new(repository.BillsRepository), new(*mongodb.BillsDAO)),
	mongodb.NewCountersDAO,
	wire.Bind(new(repository.CountersRepository), new(*mongodb.CountersDAO)),
	mongodb.NewSettingsDAO,
	wire.Bind(new(repository.SettingsRepository), new(*mongodb.SettingsDAO)),
	mongodb.NewActivityLogDAO,
	wire.Bind(new(repository.ActivityLogRepository), new(*mongodb.ActivityLogDAO)),
	logic.NewActivityRecorder,
	logic.NewActivityLogic,
	logic.BillingLogicProviderSet,
	logic.MenuLogicProviderSet,
	logic.NewSettingsLogic,
	logic.NewAnalyticsLogic,
)

// provideWorkers collects every background worker the server runs.
func provideWorkers(pruner *worker.ActivityLogPruner) []worker.Worker {
	return []worker.Worker{pruner}
}

func InitializeApp(appConfig *conf.AppConfig) (*app.App, func(), error) {
	wire.Build(
		baseProviders,
		wire.FieldsOf(new(*conf.AppConfig), "Port"),
		service.NewAuthService,
		service.NewBillingService,
		service.NewMenuService,
		service.NewSettingsService,
		service.NewAnalyticsService,
		service.NewActivityService,
		http_middleware.NewAuthMiddleware,
		worker.NewActivityLogPruner,
		provideWorkers,
		app.NewRouter,
		app.NewApp,
	)
	return nil, nil, nil
}
