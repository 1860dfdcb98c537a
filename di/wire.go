//go:build wireinject
// +build wireinject

package di

import (
	"staysync/config"
	"staysync/infras/hostaway"
	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/infras/redis"
	"staysync/shared/cache"
	"staysync/transport/http"
	"staysync/transport/http/middleware"
	"staysync/transport/http/router"

	analyticsService "staysync/internal/domains/analytics/service"
	mirrorRepository "staysync/internal/domains/mirror/repository"
	mirrorService "staysync/internal/domains/mirror/service"
	"staysync/internal/domains/sync/scheduler"
	syncService "staysync/internal/domains/sync/service"

	analyticsHandler "staysync/internal/handlers/analytics"
	bookingHandler "staysync/internal/handlers/booking"
	healthHandler "staysync/internal/handlers/health"
	syncHandler "staysync/internal/handlers/sync"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	hostaway.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var mirrorDomain = wire.NewSet(
	mirrorRepository.NewBooking,
	mirrorRepository.NewListing,
	mirrorRepository.NewSyncStatus,
	mirrorService.New,
)

var syncDomain = wire.NewSet(
	syncService.NewTracker,
	syncService.New,
	scheduler.New,
)

var analyticsDomain = wire.NewSet(
	analyticsService.New,
)

var domains = wire.NewSet(
	mirrorDomain,
	syncDomain,
	analyticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	syncHandler.New,
	bookingHandler.New,
	analyticsHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
