package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloud-ru/firefly-go/internal/api"
	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/cloud-ru/firefly-go/internal/tracing"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.New(logging.DefaultConfig()).Error("failed to load config", logging.FieldError, err.Error())
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:     logging.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: logging.ComponentApp,
		Output:    os.Stderr,
	})
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		logger.Error("failed to init tracing", logging.FieldError, err.Error())
		os.Exit(1)
	}

	srv := api.NewServer(service.New(cfg, tracer, logger, "api"), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", logging.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("server stopped")
}
