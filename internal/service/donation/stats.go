package donation

import (
	"context"
	"fmt"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// GetStats returns the dashboard counters for the current user.
// TimesDonated multiplies causes by purchases; see domain.DonationStats.
func (s *Service) GetStats(ctx context.Context) (domain.DonationStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DonationStats{}, domain.ErrUnauthorized
	}

	causes, err := s.ledger.CountDistinctCharities(ctx, userID)
	if err != nil {
		return domain.DonationStats{}, fmt.Errorf("count causes: %w", err)
	}

	purchases, err := s.ledger.CountDistinctTransactions(ctx, userID)
	if err != nil {
		return domain.DonationStats{}, fmt.Errorf("count purchases: %w", err)
	}

	return domain.DonationStats{
		CausesSupported: causes,
		TotalPurchases:  purchases,
		TimesDonated:    causes * purchases,
	}, nil
}
