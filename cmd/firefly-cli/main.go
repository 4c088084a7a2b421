package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/cloud-ru/firefly-go/internal/cli"
	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/scenario"
	"github.com/cloud-ru/firefly-go/internal/service"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML file with one or more scenarios; skips the interactive prompts")
	yearly := flag.Bool("yearly", false, "print the year-by-year breakdown for scenario runs")
	flag.Parse()

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

	app := cli.New(service.New(cfg, nil, logger, "cli"), os.Stdin, os.Stdout, logger)

	if *scenarioPath != "" {
		scenarios, err := scenario.Load(*scenarioPath)
		if err == nil {
			err = app.RunScenarios(ctx, scenarios, *yearly)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
