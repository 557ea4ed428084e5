package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"ledgerview/internal/backend"
	"ledgerview/internal/cli"
	apphttp "ledgerview/internal/http"
	"ledgerview/internal/log"
	"ledgerview/internal/report"
)

func main() {
	cli.LoadEnvFile()
	cfg, logger := cli.LoadAndValidateConfig()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}
	res, err := backend.NewFactory(logger.WithComponent(log.ComponentBackend).Slog()).
		CreateLoader(context.Background(), backendCfg)
	if err != nil {
		logger.Error("Failed to create loader", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}

	ledger := cfg.Ledger()
	builder := report.NewBuilder(res.Loader, ledger.CurrentBalance, logger.WithComponent(log.ComponentReport).Slog())
	srv := apphttp.NewServer(":"+cfg.Port, builder, logger)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 15 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func(shutdownCtx context.Context) {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		if res.Cleanup != nil {
			if err := res.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", log.FieldError, err)
			}
		}
	})

	logger.Info("Starting ledgerview server",
		"port", cfg.Port,
		log.FieldBackend, cfg.DataBackend,
		"current_balance", ledger.CurrentBalance)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
