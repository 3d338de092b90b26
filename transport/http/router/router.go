package router

import (
	"github.com/go-chi/chi/v5"

	"rentello/internal/handlers/admin"
	"rentello/internal/handlers/auth"
	"rentello/internal/handlers/booking"
	"rentello/internal/handlers/rental"
	"rentello/internal/handlers/vehicle"
	"rentello/transport/http/middleware"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Vehicle vehicle.Handler
	Booking booking.Handler
	Rental  rental.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.App
	Session        middleware.Session
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.Tracing)
		routerGroup.Use(r.App.RateLimit)
		routerGroup.Use(r.Session.Authenticate)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Vehicle.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Rental.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.App, session middleware.Session) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Session:        session,
	}
}
