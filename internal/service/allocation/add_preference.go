package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// AddPreference activates a new charity preference for the current user.
// The preference starts at 0% allocation; percentages are assigned later
// through SetAllocations or an equal-split bootstrap.
func (s *Service) AddPreference(ctx context.Context, input AddPreferenceInput) (domain.CharityPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CharityPreference{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.CharityPreference{}, err
	}

	count, err := s.prefs.CountActive(ctx, userID)
	if err != nil {
		return domain.CharityPreference{}, fmt.Errorf("count preferences: %w", err)
	}
	if count >= s.maxActive {
		return domain.CharityPreference{}, &domain.PreferenceLimitError{Limit: s.maxActive}
	}

	pref, err := s.prefs.Create(ctx, userID, input.CharityID)
	if err != nil {
		return domain.CharityPreference{}, fmt.Errorf("create preference: %w", err)
	}

	s.log.InfoContext(ctx, "preference added",
		slog.String("user_id", userID),
		slog.String("charity_id", input.CharityID),
		slog.Int("active_count", count+1),
	)

	return pref, nil
}
