//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"stayhub/config"
	"stayhub/infras/jwt"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/infras/redis"
	"stayhub/permissions"
	"stayhub/shared/cache"
	"stayhub/transport/http"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/router"

	bookingRepository "stayhub/internal/domains/booking/repository"
	bookingService "stayhub/internal/domains/booking/service"
	hotelRepository "stayhub/internal/domains/hotel/repository"
	hotelService "stayhub/internal/domains/hotel/service"
	roomTypeRepository "stayhub/internal/domains/roomtype/repository"
	roomTypeService "stayhub/internal/domains/roomtype/service"
	unitRepository "stayhub/internal/domains/unit/repository"
	unitService "stayhub/internal/domains/unit/service"

	bookingHandler "stayhub/internal/handlers/booking"
	healthHandler "stayhub/internal/handlers/health"
	hotelHandler "stayhub/internal/handlers/hotel"
	roomTypeHandler "stayhub/internal/handlers/roomtype"
	unitHandler "stayhub/internal/handlers/unit"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var unitDomain = wire.NewSet(
	unitRepository.New,
	unitService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomTypeDomain,
	unitDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	hotelHandler.New,
	roomTypeHandler.New,
	unitHandler.New,
	bookingHandler.New,
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
