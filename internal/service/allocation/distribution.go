package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// GetDistribution returns the user's effective allocation, in stable
// creation order. Freshly added preferences all sit at 0%, so an
// uninitialized allocation bootstraps to an equal split; the split is
// written back best-effort so later reads see the same numbers even if
// the write fails now.
func (s *Service) GetDistribution(ctx context.Context) ([]domain.CharityShare, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prefs, err := s.prefs.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	if len(prefs) == 0 {
		return []domain.CharityShare{}, nil
	}

	if domain.AllocationUninitialized(prefs) {
		return s.bootstrapEqualSplit(ctx, userID, prefs), nil
	}

	shares := make([]domain.CharityShare, len(prefs))
	for i, p := range prefs {
		shares[i] = domain.CharityShare{CharityID: p.CharityID, Percentage: p.AllocationPercentage}
	}
	return shares, nil
}

// bootstrapEqualSplit computes the equal split and writes it through to
// storage. Write failures are logged and swallowed: the read path must
// keep working when the store is degraded, and the split is recomputed
// identically on the next call.
func (s *Service) bootstrapEqualSplit(ctx context.Context, userID string, prefs []domain.CharityPreference) []domain.CharityShare {
	split := domain.EqualSplit(len(prefs))

	shares := make([]domain.CharityShare, len(prefs))
	for i, p := range prefs {
		shares[i] = domain.CharityShare{CharityID: p.CharityID, Percentage: split}

		if err := s.prefs.SetPercentage(ctx, userID, p.CharityID, split); err != nil {
			s.log.WarnContext(ctx, "equal split write-through failed",
				slog.String("user_id", userID),
				slog.String("charity_id", p.CharityID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "allocation bootstrapped to equal split",
		slog.String("user_id", userID),
		slog.Int("charities", len(prefs)),
		slog.Float64("percentage", split),
	)
	if s.splits != nil {
		s.splits.Inc()
	}

	return shares
}
