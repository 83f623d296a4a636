//go:build wireinject
// +build wireinject

package di

import (
	"dualzone/config"
	"dualzone/infras/otel"
	"dualzone/infras/postgres"
	clockService "dualzone/internal/domains/clock/service"
	clockHandler "dualzone/internal/handlers/clock"
	"dualzone/transport/http"
	"dualzone/transport/http/middleware"
	"dualzone/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewTimezoneMiddleware,
)

var sharedHelpers = wire.NewSet(
	ProvideTimezone,
)

var clockDomain = wire.NewSet(
	clockService.New,
)

var domains = wire.NewSet(
	clockDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clockHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		sharedHelpers,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
