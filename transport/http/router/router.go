package router

import (
	"slices"

	"dualzone/config"
	_ "dualzone/docs"
	"dualzone/internal/handlers/clock"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Clock clock.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	if corsConfig := r.Config.App.CORS; corsConfig.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   slices.Concat(corsConfig.AllowedHeaders, []string{r.Config.App.TimezoneHeader}),
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	if r.Config.Server.Swagger {
		router.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Clock.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Config:         cfg,
	}
}
