package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/cloud-ru/firefly-go/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:     logging.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: logging.ComponentApp,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := tui.NewApp(ctx, service.New(cfg, nil, logger, "tui"), os.Stdin, os.Stdout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
