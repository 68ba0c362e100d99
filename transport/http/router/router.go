package router

import (
	"reserve/internal/handlers/booking"
	"reserve/internal/handlers/room"
	"reserve/internal/handlers/xstate"
	"reserve/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "reserve/docs"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	XState  xstate.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	auth           middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Group(func(app chi.Router) {
		app.Use(r.app.RequestID, r.app.Tracing, r.app.Tenant, r.app.RateLimit(), r.auth.APIKey)

		app.Route("/v1", func(routerGroup chi.Router) {
			routerGroup.Group(func(internal chi.Router) {
				internal.Use(r.auth.RequireAPIKey)

				r.DomainHandlers.XState.Router(internal)
			})

			routerGroup.Group(func(client chi.Router) {
				client.Use(r.auth.Auth, r.auth.RBAC)

				r.DomainHandlers.Room.Router(client)
				r.DomainHandlers.Booking.Router(client)
			})
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		auth:           auth,
	}
}
