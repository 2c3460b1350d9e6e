//go:build wireinject
// +build wireinject

package main

import (
	"shiftlist/config"
	"shiftlist/internal/command"
	"shiftlist/internal/cron"
	"shiftlist/internal/database"
	"shiftlist/internal/handler"
	"shiftlist/internal/middleware"
	"shiftlist/internal/router"
	"shiftlist/internal/service"
	"shiftlist/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
