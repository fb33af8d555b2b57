// Package donation implements the donation engine: splitting a purchase's
// cashback across the user's chosen charities, recording the results in the
// append-only ledger, and serving the aggregate views built on top of it.
package donation

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/buy4good/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type distributionSource interface {
	GetDistribution(ctx context.Context) ([]domain.CharityShare, error)
}

type ledgerRepo interface {
	InsertIfAbsent(ctx context.Context, rec domain.DonationRecord) (bool, error)
	TotalForUser(ctx context.Context, userID string) (decimal.Decimal, error)
	RecentForUser(ctx context.Context, userID string, limit int) ([]domain.DonationRecord, error)
	CountDistinctCharities(ctx context.Context, userID string) (int, error)
	CountDistinctTransactions(ctx context.Context, userID string) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the donation service tunables.
type Config struct {
	// DefaultCashbackRate is used when a purchase event carries no rate, in percent.
	DefaultCashbackRate float64
	// MaxAutoDonationPercentage bounds the cashback share a user may donate.
	MaxAutoDonationPercentage float64
	// RecentLimit caps how many ledger records feed the recent-activity view.
	RecentLimit int
}

// Service implements the donation business logic.
type Service struct {
	distribution distributionSource
	ledger       ledgerRepo
	log          *slog.Logger
	cfg          Config
}

// NewService creates a new Donation service. Zero config fields fall back
// to conservative defaults.
func NewService(log *slog.Logger, distribution distributionSource, ledger ledgerRepo, cfg Config) *Service {
	if cfg.DefaultCashbackRate <= 0 {
		cfg.DefaultCashbackRate = 2.0
	}
	if cfg.MaxAutoDonationPercentage <= 0 {
		cfg.MaxAutoDonationPercentage = 10.0
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 10
	}

	return &Service{
		distribution: distribution,
		ledger:       ledger,
		log:          log.With("service", "donation"),
		cfg:          cfg,
	}
}
