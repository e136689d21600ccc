package router

import (
	"ehotels/internal/handlers/auth"
	"ehotels/internal/handlers/booking"
	"ehotels/internal/handlers/customer"
	"ehotels/internal/handlers/employee"
	"ehotels/internal/handlers/hotel"
	"ehotels/internal/handlers/rental"
	"ehotels/internal/handlers/room"
	"ehotels/shared/constant"

	_ "ehotels/docs" // swagger docs

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Booking  booking.Handler
	Rental   rental.Handler
	Customer customer.Handler
	Employee employee.Handler
	Hotel    hotel.Handler
	Room     room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes registers every route with its full path. The RBAC middleware
// matches the resolved chi pattern against the permission table, so no
// subrouters are used.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Get(constant.PathSwagger, httpSwagger.WrapHandler)

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Rental.Router(router)
	r.DomainHandlers.Customer.Router(router)
	r.DomainHandlers.Employee.Router(router)
	r.DomainHandlers.Hotel.Router(router)
	r.DomainHandlers.Room.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
