package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/docsedge/pkg/config"
	"github.com/dmitrymomot/docsedge/pkg/edge"
	"github.com/dmitrymomot/docsedge/pkg/i18n"
	"github.com/dmitrymomot/docsedge/pkg/logger"
	"github.com/dmitrymomot/docsedge/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "docsedge:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg edge.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	app, err := edge.New(cfg, edge.WithLogger(log))
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
