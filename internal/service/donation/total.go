package donation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// GetTotal returns the lifetime sum of the current user's donations.
func (s *Service) GetTotal(ctx context.Context) (decimal.Decimal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return decimal.Zero, domain.ErrUnauthorized
	}

	total, err := s.ledger.TotalForUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total donations: %w", err)
	}

	return total, nil
}
