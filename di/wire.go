//go:build wireinject
// +build wireinject

package di

import (
	"ehotels/config"
	"ehotels/infras/jwt"
	"ehotels/infras/kafka"
	"ehotels/infras/otel"
	"ehotels/infras/postgres"
	"ehotels/infras/redis"
	"ehotels/infras/s3"
	"ehotels/permissions"
	"ehotels/shared/cache"
	"ehotels/shared/transaction"
	"ehotels/transport/http"
	"ehotels/transport/http/middleware"
	"ehotels/transport/http/router"

	accountRepository "ehotels/internal/domains/account/repository"
	authService "ehotels/internal/domains/auth/service"
	bookingRepository "ehotels/internal/domains/booking/repository"
	bookingService "ehotels/internal/domains/booking/service"
	customerRepository "ehotels/internal/domains/customer/repository"
	customerService "ehotels/internal/domains/customer/service"
	employeeRepository "ehotels/internal/domains/employee/repository"
	employeeService "ehotels/internal/domains/employee/service"
	hotelRepository "ehotels/internal/domains/hotel/repository"
	hotelService "ehotels/internal/domains/hotel/service"
	hotelChainRepository "ehotels/internal/domains/hotelchain/repository"
	rentalEvent "ehotels/internal/domains/rental/event"
	rentalRepository "ehotels/internal/domains/rental/repository"
	rentalService "ehotels/internal/domains/rental/service"
	roomRepository "ehotels/internal/domains/room/repository"
	roomService "ehotels/internal/domains/room/service"

	authHandler "ehotels/internal/handlers/auth"
	bookingHandler "ehotels/internal/handlers/booking"
	customerHandler "ehotels/internal/handlers/customer"
	employeeHandler "ehotels/internal/handlers/employee"
	hotelHandler "ehotels/internal/handlers/hotel"
	rentalHandler "ehotels/internal/handlers/rental"
	roomHandler "ehotels/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	transaction.New,
)

var repositories = wire.NewSet(
	accountRepository.New,
	bookingRepository.New,
	bookingRepository.NewDetail,
	customerRepository.New,
	employeeRepository.New,
	hotelRepository.New,
	hotelChainRepository.New,
	rentalRepository.New,
	roomRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	bookingService.New,
	customerService.New,
	employeeService.New,
	hotelService.New,
	rentalEvent.New,
	rentalService.New,
	roomService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	customerHandler.New,
	employeeHandler.New,
	hotelHandler.New,
	rentalHandler.New,
	roomHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
