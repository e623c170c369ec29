package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpAdapter "github.com/austral/caixa/internal/adapter/http"
	"github.com/austral/caixa/internal/adapter/http/handler"
	"github.com/austral/caixa/internal/adapter/repository/jsonfile"
	"github.com/austral/caixa/internal/infrastructure/config"
	"github.com/austral/caixa/internal/infrastructure/logger"
	"github.com/austral/caixa/internal/usecase"
)

func main() {
	// A missing .env file is fine, the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to create data directory")
	}

	ctx := context.Background()

	// The ledger is bound to today's file for the lifetime of the process.
	ledger := jsonfile.NewLedgerRepository(cfg.DataDir, time.Now(), log)
	if err := ledger.Load(ctx); err != nil {
		log.Warn().Err(err).Str("path", ledger.Path()).Msg("failed to load day ledger, starting empty")
	} else {
		log.Info().Str("path", ledger.Path()).Int("sales", len(ledger.All(ctx))).Msg("day ledger loaded")
	}

	reportWriter := jsonfile.NewReportWriter(cfg.DataDir)

	registerUC := usecase.NewRegisterUseCase(ledger, time.Now, log)
	reportUC := usecase.NewReportUseCase(ledger, reportWriter, time.Now, log)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SaleHandler:    handler.NewSaleHandler(registerUC),
		ReportHandler:  handler.NewReportHandler(reportUC),
		OptionsHandler: handler.NewOptionsHandler(cfg.Sellers, cfg.PaymentOptions, cfg.NoteOptions),
		HealthHandler:  handler.NewHealthHandler(ledger),
		Logger:         log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
