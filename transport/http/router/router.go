package router

import (
	"staysync/internal/handlers/analytics"
	"staysync/internal/handlers/booking"
	"staysync/internal/handlers/health"
	"staysync/internal/handlers/sync"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health    health.Handler
	Sync      sync.Handler
	Booking   booking.Handler
	Analytics analytics.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Sync.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
