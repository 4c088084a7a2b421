package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/cloud-ru/firefly-go/internal/tools"
	"github.com/cloud-ru/firefly-go/internal/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.New(logging.DefaultConfig()).Error("failed to load config", logging.FieldError, err.Error())
		os.Exit(1)
	}

	// stdout занят транспортом MCP, логи только в stderr
	logger := logging.New(logging.Config{
		Level:     logging.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: logging.ComponentApp,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		logger.Error("failed to init tracing", logging.FieldError, err.Error())
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	server := tools.NewServer(service.New(cfg, tracer, logger, "mcp"), tracing.ServiceVersion, logger)

	logger.Info("starting MCP server on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("MCP server stopped with error", logging.FieldError, err.Error())
		os.Exit(1)
	}
}
