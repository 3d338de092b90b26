//go:build wireinject
// +build wireinject

package di

import (
	"rentello/config"
	"rentello/infras/otel"
	"rentello/infras/redis"
	"rentello/infras/rentello"
	"rentello/infras/token"
	"rentello/permissions"
	"rentello/shared/cache"
	"rentello/transport/http"
	"rentello/transport/http/middleware"
	"rentello/transport/http/router"

	"github.com/google/wire"

	adminService "rentello/internal/domains/admin/service"
	bookingService "rentello/internal/domains/booking/service"
	bookingStore "rentello/internal/domains/booking/store"
	pricingService "rentello/internal/domains/pricing/service"
	rentalService "rentello/internal/domains/rental/service"
	sessionService "rentello/internal/domains/session/service"
	sessionStore "rentello/internal/domains/session/store"
	vehicleService "rentello/internal/domains/vehicle/service"

	adminHandler "rentello/internal/handlers/admin"
	authHandler "rentello/internal/handlers/auth"
	bookingHandler "rentello/internal/handlers/booking"
	rentalHandler "rentello/internal/handlers/rental"
	vehicleHandler "rentello/internal/handlers/vehicle"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	rentello.New,
	token.NewInspector,
)

var middlewares = wire.NewSet(
	middleware.NewApp,
	middleware.NewSession,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionStore.New,
	sessionService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingStore.New,
	bookingService.New,
)

var vehicleDomain = wire.NewSet(
	vehicleService.New,
)

var rentalDomain = wire.NewSet(
	rentalService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	pricingDomain,
	bookingDomain,
	vehicleDomain,
	rentalDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	vehicleHandler.New,
	bookingHandler.New,
	rentalHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
