package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// Rebalance resets the user's active preferences to an equal split.
// Unlike the bootstrap in GetDistribution, this write is transactional:
// the caller asked for a rebalance, so a half-applied split is an error.
func (s *Service) Rebalance(ctx context.Context) ([]domain.CharityShare, error) {
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

	split := domain.EqualSplit(len(prefs))

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, p := range prefs {
			if err := s.prefs.SetPercentage(txCtx, userID, p.CharityID, split); err != nil {
				return fmt.Errorf("set percentage for %s: %w", p.CharityID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	shares := make([]domain.CharityShare, len(prefs))
	for i, p := range prefs {
		shares[i] = domain.CharityShare{CharityID: p.CharityID, Percentage: split}
	}

	s.log.InfoContext(ctx, "allocations rebalanced",
		slog.String("user_id", userID),
		slog.Int("charities", len(prefs)),
		slog.Float64("percentage", split),
	)

	return shares, nil
}
