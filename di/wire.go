//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	adminRepository "lodge/internal/domains/admin/repository"
	adminService "lodge/internal/domains/admin/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	paymentRepository "lodge/internal/domains/payment/repository"
	paymentService "lodge/internal/domains/payment/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	svcRepository "lodge/internal/domains/service/repository"
	svcService "lodge/internal/domains/service/service"

	adminHandler "lodge/internal/handlers/admin"
	bookingHandler "lodge/internal/handlers/booking"
	guestHandler "lodge/internal/handlers/guest"
	paymentHandler "lodge/internal/handlers/payment"
	roomHandler "lodge/internal/handlers/room"
	serviceHandler "lodge/internal/handlers/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var serviceDomain = wire.NewSet(
	svcRepository.New,
	svcService.New,
)

var domains = wire.NewSet(
	guestDomain,
	adminDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	serviceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	adminHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	serviceHandler.New,
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
