package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// RemovePreference deactivates the user's preference for the given charity.
// The donation history referencing the charity is untouched, and remaining
// allocations are NOT rebalanced automatically: until the user saves a new
// split (or calls Rebalance), the remaining percentages no longer sum to
// 100 and distribution falls back to the stored values as-is.
func (s *Service) RemovePreference(ctx context.Context, input RemovePreferenceInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.prefs.Deactivate(ctx, userID, input.CharityID); err != nil {
		return fmt.Errorf("deactivate preference: %w", err)
	}

	s.log.InfoContext(ctx, "preference removed",
		slog.String("user_id", userID),
		slog.String("charity_id", input.CharityID),
	)

	return nil
}
