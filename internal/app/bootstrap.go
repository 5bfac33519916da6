package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"profile-sync/internal/config"
	"profile-sync/internal/database/migration"
	"profile-sync/internal/database/seeder"
	"profile-sync/internal/delivery/http/middleware"
	"profile-sync/internal/delivery/http/routes"
	"profile-sync/migrations"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	routes.Register(f, c.Config, c.DB, c.Cache, c.Logger)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, applies embedded migrations, seeds the
// industry reference table, and wires the HTTP app. The returned cleanup
// releases the container.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runner := migration.Runner{FS: migrations.Files}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	seeds := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.ProfilesSchemaSeeder{},
		seeder.IndustriesSeeder{},
	}}
	if err := seeds.Run(ctx, c.DB); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
