// Package main provides the entry point for the landing site server
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/domain/health"
	"github.com/amamam1231/ai-project-312/domain/relay"
	"github.com/amamam1231/ai-project-312/domain/scheduler"
	"github.com/amamam1231/ai-project-312/domain/site"
	"github.com/amamam1231/ai-project-312/domain/tracing"
	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/internal/handlers"
	"github.com/amamam1231/ai-project-312/internal/server"
	"github.com/amamam1231/ai-project-312/pkg/logger"
)

func main() {
	// .env.local overrides .env; Load() keeps existing vars, Overload() replaces them
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,
		scheduler.Module,

		// Domain
		site.Module,
		relay.Module,
		contact.Module,
		health.Module,

		// Pages
		handlers.Module,
	).Run()
}
