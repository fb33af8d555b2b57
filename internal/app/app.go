// Package app wires configuration, storage, services and the HTTP server
// together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/buy4good/backend/internal/adapter/postgres"
	"github.com/buy4good/backend/internal/adapter/postgres/donation"
	"github.com/buy4good/backend/internal/adapter/postgres/preference"
	"github.com/buy4good/backend/internal/adapter/provider/pledge"
	"github.com/buy4good/backend/internal/auth"
	"github.com/buy4good/backend/internal/config"
	"github.com/buy4good/backend/internal/metrics"
	allocationsvc "github.com/buy4good/backend/internal/service/allocation"
	charitysvc "github.com/buy4good/backend/internal/service/charity"
	donationsvc "github.com/buy4good/backend/internal/service/donation"
	"github.com/buy4good/backend/internal/transport/httpapi"
	"github.com/buy4good/backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	reg := metrics.NewRegistry()

	prefRepo := preference.New(pool)
	ledgerRepo := donation.New(pool)
	txManager := postgres.NewTxManager(pool)

	directory := pledge.NewProvider(cfg.Directory.BaseURL, cfg.Directory.APIKey, logger)

	allocSvc := allocationsvc.NewService(logger, prefRepo, txManager,
		cfg.Donation.MaxActivePreferences, reg.EqualSplits)
	donationSvc := donationsvc.NewService(logger, allocSvc, ledgerRepo, donationsvc.Config{
		DefaultCashbackRate:       cfg.Donation.DefaultCashbackRate,
		MaxAutoDonationPercentage: cfg.Donation.MaxAutoDonationPercentage,
		RecentLimit:               cfg.Donation.RecentLimit,
	})
	charitySvc := charitysvc.NewService(logger, directory)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 15*time.Minute)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Metrics:     reg,
		Limiter:     limiter,
		RateLimit:   cfg.Server.RateLimit,
		Validator:   jwtManager,
		Preferences: httpapi.NewPreferenceHandler(allocSvc, logger),
		Donations:   httpapi.NewDonationHandler(donationSvc, reg, logger),
		Charities:   httpapi.NewCharityHandler(charitySvc, logger),
		Health:      httpapi.NewHealthHandler(pool, Version),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
