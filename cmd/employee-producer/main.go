// Command employee-producer serves employee records over HTTP. Records whose
// primary fetch fails are answered with a degraded fallback copy.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/handsoncoder/employee-producer/bootstrap"
	"github.com/handsoncoder/employee-producer/config"
	"github.com/handsoncoder/employee-producer/employee"
	"github.com/handsoncoder/employee-producer/logger"
	"github.com/handsoncoder/employee-producer/observability"
	"github.com/handsoncoder/employee-producer/redis"
	"github.com/handsoncoder/employee-producer/server"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg AppConfig
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		return err
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	if _, err := wire(app); err != nil {
		return err
	}
	return app.Run(ctx)
}

// wire builds the roster, service and HTTP server, and registers the
// tracer, redis and server components on app. With redis enabled the roster
// is seeded into Redis before the server starts and Redis becomes the
// primary source.
func wire(app *bootstrap.App[*AppConfig]) (*server.Server, error) {
	cfg := app.Cfg

	roster, err := employee.NewRoster(cfg.Employee.Roster)
	if err != nil {
		return nil, fmt.Errorf("building roster: %w", err)
	}

	tracer := observability.NewTracerComponent(cfg.Tracing, cfg.Name, cfg.Version, cfg.Environment)
	if err := app.RegisterComponent(tracer); err != nil {
		return nil, err
	}

	var source employee.Source = roster
	if cfg.Redis.Enabled {
		client, err := redis.New(cfg.Redis, app.Logger)
		if err != nil {
			return nil, err
		}
		if err := app.RegisterComponent(redis.NewComponent(client)); err != nil {
			return nil, err
		}
		store := employee.NewStoreSource(redis.NewTypedStore[employee.Record](client, cfg.Redis.KeyPrefix))
		if err := app.RegisterComponent(employee.NewSeedComponent(store, cfg.Employee.Roster)); err != nil {
			return nil, err
		}
		source = store
	}

	svc := employee.NewService(source, roster, cfg.Employee.Default, app.Logger)

	srv := server.New(cfg.Server, app.Logger)
	srv.RegisterDefaultEndpoints(cfg.Name, app.Components.HealthAll)
	employee.NewHandler(svc).Register(srv.GinEngine())

	if err := app.RegisterComponent(server.NewComponent(srv)); err != nil {
		return nil, err
	}

	app.Logger.Info("Roster loaded", logger.Fields(
		"employees", roster.Len(),
		"names", roster.Names(),
		"default", cfg.Employee.Default,
		"redis", cfg.Redis.Enabled,
	))
	return srv, nil
}
