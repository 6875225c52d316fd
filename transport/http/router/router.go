package router

import (
	"lodge/internal/handlers/admin"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/service"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Guest   guest.Handler
	Admin   admin.Handler
	Room    room.Handler
	Booking booking.Handler
	Payment payment.Handler
	Service service.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
