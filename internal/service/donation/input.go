package donation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/buy4good/backend/internal/domain"
)

// DistributeInput holds the purchase event to distribute.
type DistributeInput struct {
	// TransactionID identifies the originating purchase. When empty, a
	// synthetic id is generated and the distribution is NOT idempotent
	// against resubmission.
	TransactionID string
	MerchantName  string
	// ProductName defaults to "<merchant> Purchase" when empty.
	ProductName string
	GrossAmount decimal.Decimal
	// CashbackRate in percent; zero means the configured default applies.
	CashbackRate float64
	// AutoDonationPercentage is the share of cashback donated, in percent.
	AutoDonationPercentage float64
}

// Validate checks all fields and collects all errors. The
// AutoDonationPercentage upper bound is configured per deployment, so it
// is enforced in Distribute rather than here.
func (i *DistributeInput) Validate() error {
	var errs []domain.FieldError

	if i.MerchantName == "" {
		errs = append(errs, domain.FieldError{Field: "merchant_name", Message: "required"})
	}
	if !i.GrossAmount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if i.CashbackRate < 0 {
		errs = append(errs, domain.FieldError{Field: "cashback_rate", Message: "must be non-negative"})
	}
	if i.AutoDonationPercentage < 0 {
		errs = append(errs, domain.FieldError{Field: "auto_donation_percentage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateRange enforces the configured AutoDonationPercentage ceiling.
func (i *DistributeInput) validateRange(maxAutoDonation float64) error {
	if i.AutoDonationPercentage > maxAutoDonation {
		return domain.NewValidationError("auto_donation_percentage",
			fmt.Sprintf("must not exceed %.1f", maxAutoDonation))
	}
	return nil
}
