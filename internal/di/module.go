package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/customersystem/internal/app"
	"github.com/polkiloo/customersystem/internal/config"
	"github.com/polkiloo/customersystem/internal/logger"
	"github.com/polkiloo/customersystem/internal/metrics"
	"github.com/polkiloo/customersystem/internal/pkg/auth"
	"github.com/polkiloo/customersystem/internal/server/http/handlers"
	"github.com/polkiloo/customersystem/internal/server/http/router"
	"github.com/polkiloo/customersystem/internal/storage/postgres"
	"github.com/polkiloo/customersystem/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended
// last so callers can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.CustomerSystemFacade) handlers.Facade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
