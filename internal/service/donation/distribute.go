package donation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/pkg/ctxutil"
)

// Distribute splits the purchase's donation pool across the user's current
// allocation and appends one ledger record per charity.
//
// Money conservation: every per-charity amount is the pool share rounded to
// cents (half up), except the last charity, which absorbs the rounding
// remainder so the amounts sum exactly to the rounded pool total.
//
// Records are keyed by (transaction, charity), so replaying the same event
// is a no-op on the ledger and returns the same amounts. A ledger write
// failing with domain.ErrUnavailable does not abort the fan-out; the
// affected charity is reported in FailedCharityIDs and the event can be
// replayed later to fill the gap.
func (s *Service) Distribute(ctx context.Context, input DistributeInput) (*domain.DistributionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := input.validateRange(s.cfg.MaxAutoDonationPercentage); err != nil {
		return nil, err
	}

	event := s.buildEvent(userID, input)

	result := &domain.DistributionResult{
		TransactionID:       event.TransactionID,
		PurchaseAmount:      event.GrossAmount,
		CashbackRate:        event.CashbackRate,
		CashbackAmount:      event.CashbackAmount().Round(2),
		TotalDonationAmount: decimal.Zero,
		PerCharityAmounts:   []domain.CharityAmount{},
		FailedCharityIDs:    []string{},
	}

	pool := event.DonationPool()
	total := pool.Round(2)
	if !total.IsPositive() {
		s.log.InfoContext(ctx, "donation pool rounds to zero",
			slog.String("user_id", userID),
			slog.String("transaction_id", event.TransactionID),
		)
		return result, nil
	}

	shares, err := s.distribution.GetDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("get distribution: %w", err)
	}
	if len(shares) == 0 {
		s.log.InfoContext(ctx, "no active charities, nothing to distribute",
			slog.String("user_id", userID),
			slog.String("transaction_id", event.TransactionID),
		)
		return result, nil
	}

	result.TotalDonationAmount = total
	result.PerCharityAmounts = splitPool(pool, total, shares)

	now := time.Now().UTC()
	for _, ca := range result.PerCharityAmounts {
		if !ca.Amount.IsPositive() {
			continue
		}

		rec := domain.DonationRecord{
			ID:                    domain.DonationRecordID(event.TransactionID, ca.CharityID),
			UserID:                userID,
			CharityID:             ca.CharityID,
			DonationAmount:        ca.Amount,
			DonationDate:          now,
			OriginalTransactionID: event.TransactionID,
			MerchantName:          event.MerchantName,
			ProductName:           event.ProductName,
			CreatedAt:             now,
		}

		created, err := s.ledger.InsertIfAbsent(ctx, rec)
		if err != nil {
			if errors.Is(err, domain.ErrUnavailable) {
				s.log.WarnContext(ctx, "ledger write failed, charity skipped",
					slog.String("user_id", userID),
					slog.String("transaction_id", event.TransactionID),
					slog.String("charity_id", ca.CharityID),
					slog.String("error", err.Error()),
				)
				result.FailedCharityIDs = append(result.FailedCharityIDs, ca.CharityID)
				continue
			}
			return nil, fmt.Errorf("record donation for %s: %w", ca.CharityID, err)
		}
		if !created {
			s.log.InfoContext(ctx, "donation already recorded",
				slog.String("transaction_id", event.TransactionID),
				slog.String("charity_id", ca.CharityID),
			)
		}
	}

	s.log.InfoContext(ctx, "donation distributed",
		slog.String("user_id", userID),
		slog.String("transaction_id", event.TransactionID),
		slog.String("total", total.String()),
		slog.Int("charities", len(result.PerCharityAmounts)),
		slog.Int("failed", len(result.FailedCharityIDs)),
	)

	return result, nil
}

// buildEvent fills in the input's defaulted fields.
func (s *Service) buildEvent(userID string, input DistributeInput) domain.PurchaseEvent {
	event := domain.PurchaseEvent{
		TransactionID:          input.TransactionID,
		UserID:                 userID,
		MerchantName:           input.MerchantName,
		ProductName:            input.ProductName,
		GrossAmount:            input.GrossAmount,
		CashbackRate:           input.CashbackRate,
		AutoDonationPercentage: input.AutoDonationPercentage,
	}

	if event.TransactionID == "" {
		event.TransactionID = "cashback_" + uuid.New().String()
	}
	if event.ProductName == "" {
		event.ProductName = event.MerchantName + " Purchase"
	}
	if event.CashbackRate == 0 {
		event.CashbackRate = s.cfg.DefaultCashbackRate
	}

	return event
}

// splitPool allocates the rounded pool total across the shares. Every
// charity but the last gets its unrounded slice rounded to cents, capped at
// what is still unallocated so half-up rounding on tiny pools can never push
// the running sum past the total; the last gets whatever remains.
func splitPool(pool, total decimal.Decimal, shares []domain.CharityShare) []domain.CharityAmount {
	amounts := make([]domain.CharityAmount, len(shares))
	hundred := decimal.NewFromInt(100)

	allocated := decimal.Zero
	for i, share := range shares {
		var amount decimal.Decimal
		if i == len(shares)-1 {
			amount = total.Sub(allocated)
		} else {
			amount = pool.Mul(decimal.NewFromFloat(share.Percentage)).Div(hundred).Round(2)
			if remaining := total.Sub(allocated); amount.GreaterThan(remaining) {
				amount = remaining
			}
			allocated = allocated.Add(amount)
		}
		amounts[i] = domain.CharityAmount{CharityID: share.CharityID, Amount: amount}
	}

	return amounts
}
