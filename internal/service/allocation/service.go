// Package allocation implements charity preference and allocation
// business logic: which charities a user supports and what share of
// each donation pool every charity receives.
package allocation

import (
	"context"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type preferenceRepo interface {
	ListActive(ctx context.Context, userID string) ([]domain.CharityPreference, error)
	CountActive(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, userID, charityID string) (domain.CharityPreference, error)
	Deactivate(ctx context.Context, userID, charityID string) error
	SetPercentage(ctx context.Context, userID, charityID string, percentage float64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// splitCounter counts equal-split bootstraps; prometheus.Counter satisfies it.
type splitCounter interface {
	Inc()
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the allocation business logic.
type Service struct {
	prefs     preferenceRepo
	tx        txManager
	log       *slog.Logger
	maxActive int
	splits    splitCounter
}

// NewService creates a new Allocation service. maxActive caps the number
// of simultaneously active charity preferences per user; zero or negative
// falls back to domain.DefaultMaxActivePreferences. splits may be nil.
func NewService(log *slog.Logger, prefs preferenceRepo, tx txManager, maxActive int, splits splitCounter) *Service {
	if maxActive <= 0 {
		maxActive = domain.DefaultMaxActivePreferences
	}

	return &Service{
		prefs:     prefs,
		tx:        tx,
		log:       log.With("service", "allocation"),
		maxActive: maxActive,
		splits:    splits,
	}
}
