package donation

import (
	"context"
	"fmt"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// maxRecentLimit bounds how many ledger records a single request may pull.
const maxRecentLimit = 100

// GetRecent returns the user's latest donations grouped by originating
// purchase, newest first. limit caps the number of underlying ledger
// records, not groups; zero or negative means the configured default.
func (s *Service) GetRecent(ctx context.Context, limit int) ([]domain.TransactionGroup, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = s.cfg.RecentLimit
	}
	if limit > maxRecentLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("max %d", maxRecentLimit))
	}

	recs, err := s.ledger.RecentForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent donations: %w", err)
	}

	return groupByTransaction(recs), nil
}

// groupByTransaction bundles records sharing an originating purchase,
// preserving the input's newest-first order. A record with no transaction
// id (legacy rows) forms a group of its own, keyed by its record id.
// Merchant, product and date come from the group's first record.
func groupByTransaction(recs []domain.DonationRecord) []domain.TransactionGroup {
	groups := []domain.TransactionGroup{}
	index := make(map[string]int)

	for _, rec := range recs {
		key := rec.OriginalTransactionID
		if key == "" {
			key = rec.ID.String()
		}

		i, seen := index[key]
		if !seen {
			index[key] = len(groups)
			groups = append(groups, domain.TransactionGroup{
				TransactionID: key,
				MerchantName:  rec.MerchantName,
				ProductName:   rec.ProductName,
				Date:          rec.DonationDate,
				TotalAmount:   rec.DonationAmount,
				Donations:     []domain.DonationRecord{rec},
			})
			continue
		}

		groups[i].TotalAmount = groups[i].TotalAmount.Add(rec.DonationAmount)
		groups[i].Donations = append(groups[i].Donations, rec)
	}

	return groups
}
