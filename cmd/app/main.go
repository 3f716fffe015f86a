package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"orgchart/cmd"
	httpadapter "orgchart/internal/adapters/in/http"
	"orgchart/internal/adapters/out/postgres"
	"orgchart/internal/adapters/out/postgres/companyrepo"
	"orgchart/internal/core/ports"
	"orgchart/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(configs.LogLevel, configs.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	var store ports.CompanyStore
	if configs.DatabaseEnabled() {
		db, err := postgres.Connect(ctx, configs.Postgres())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			return err
		}
		store = companyrepo.NewGormCompanyStore(db.DB())
		logger.Info("Snapshot store ready", "host", configs.DBHost, "database", configs.DBName)
	} else {
		logger.Warn("DB_HOST is empty, running without persistence")
	}

	c, err := cmd.LoadCompany(ctx, store, configs.CompanyName)
	if err != nil {
		return err
	}
	logger.Info("Company loaded", "company", c.Name(), "employees", len(c.AllEmployees()))

	app := cmd.NewCompositionRoot(configs, c, store, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, configs, logger); err != nil {
		return err
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Snapshot(saveCtx); err != nil {
		return fmt.Errorf("final snapshot: %w", err)
	}
	return nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	server, err := app.CreateServer()
	if err != nil {
		return err
	}

	doc, err := httpadapter.GetSwagger()
	if err != nil {
		return err
	}
	validator, err := httpadapter.RequestValidator(doc)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))
	e.Use(validator)
	httpadapter.RegisterHandlers(e, server)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
