package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/creator-fee-engine/internal/config"
	"github.com/anyulbade/creator-fee-engine/internal/database"
	"github.com/anyulbade/creator-fee-engine/internal/handler"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
	"github.com/anyulbade/creator-fee-engine/internal/repository"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	rates, err := config.LoadRates(cfg.RatesFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.RatesFile).Msg("failed to load rate table")
	}
	log.Info().
		Str("fee_model", rates.FeeModel()).
		Float64("platform_fee_rate", rates.PlatformFeeRate()).
		Strs("cross_border_countries", rates.CrossBorderCountries()).
		Msg("rate table loaded")

	if cfg.AdminJWTSecret == "" {
		log.Warn().Msg("ADMIN_JWT_SECRET is not set, admin routes will reject every request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		database.MigrationsDir = cfg.MigrationsDir
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedCountries(context.Background(), pool, rates); err != nil {
			log.Fatal().Err(err).Msg("failed to seed countries")
		}
	}

	router := setupRouter(pool, rates, cfg.AdminJWTSecret)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupRouter(pool *pgxpool.Pool, rates *pricing.RateTable, adminSecret string) *gin.Engine {
	engine := pricing.NewEngine(rates)
	snapshotRepo := repository.NewFeeSnapshotRepository(pool)

	quoteService := service.NewQuoteService(engine)
	snapshotService := service.NewSnapshotService(engine, snapshotRepo)
	profitabilityService := service.NewProfitabilityService(engine)
	reconciliationService := service.NewReconciliationService(engine, snapshotRepo)

	return handler.NewRouter(handler.Handlers{
		Health:      handler.NewHealthHandler(pool),
		Config:      handler.NewConfigHandler(rates),
		Quote:       handler.NewQuoteHandler(quoteService),
		Country:     handler.NewCountryHandler(engine),
		FeeSnapshot: handler.NewFeeSnapshotHandler(snapshotService),
		Admin:       handler.NewAdminHandler(profitabilityService, reconciliationService),
	}, adminSecret)
}
