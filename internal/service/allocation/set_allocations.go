package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// SetAllocations updates the allocation percentages of the user's active
// preferences. The submitted entries are overlaid on the current active set
// and the merged total must stay at 100% within domain.AllocationTolerance,
// so a partial submission cannot leave the remaining preferences summing to
// something else. An entry for a charity without an active preference is
// rejected before any write. An empty set is a no-op. All updates happen in
// one transaction, so a partial write never becomes visible.
func (s *Service) SetAllocations(ctx context.Context, input SetAllocationsInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if len(input.Shares) == 0 {
		return nil
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prefs, err := s.prefs.ListActive(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list preferences: %w", err)
		}

		merged := make(map[string]float64, len(prefs))
		for _, p := range prefs {
			merged[p.CharityID] = p.AllocationPercentage
		}
		for _, share := range input.Shares {
			if _, active := merged[share.CharityID]; !active {
				return fmt.Errorf("preference %s: %w", share.CharityID, domain.ErrNotFound)
			}
			merged[share.CharityID] = share.Percentage
		}

		total := 0.0
		for _, pct := range merged {
			total += pct
		}
		if !domain.AllocationTotalValid(total) {
			return &domain.AllocationTotalError{Total: total}
		}

		for _, share := range input.Shares {
			if err := s.prefs.SetPercentage(txCtx, userID, share.CharityID, share.Percentage); err != nil {
				return fmt.Errorf("set percentage for %s: %w", share.CharityID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "allocations updated",
		slog.String("user_id", userID),
		slog.Int("charities", len(input.Shares)),
	)

	return nil
}
