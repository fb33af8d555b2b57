package allocation

import (
	"fmt"

	"github.com/buy4good/backend/internal/domain"
)

// AddPreferenceInput holds the parameters for adding a charity preference.
type AddPreferenceInput struct {
	CharityID string
}

// Validate checks all fields and collects all errors.
func (i *AddPreferenceInput) Validate() error {
	var errs []domain.FieldError

	if i.CharityID == "" {
		errs = append(errs, domain.FieldError{Field: "charity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RemovePreferenceInput holds the parameters for removing a charity preference.
type RemovePreferenceInput struct {
	CharityID string
}

// Validate checks all fields and collects all errors.
func (i *RemovePreferenceInput) Validate() error {
	var errs []domain.FieldError

	if i.CharityID == "" {
		errs = append(errs, domain.FieldError{Field: "charity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetAllocationsInput holds the full replacement set of allocation percentages.
type SetAllocationsInput struct {
	Shares []domain.CharityShare
}

// Validate checks per-share fields and collects all errors. The 100% sum
// rule is checked separately in SetAllocations so it can surface as a
// domain.AllocationTotalError with the actual total.
func (i *SetAllocationsInput) Validate() error {
	var errs []domain.FieldError

	seen := make(map[string]bool, len(i.Shares))
	for idx, share := range i.Shares {
		field := fmt.Sprintf("shares[%d]", idx)

		if share.CharityID == "" {
			errs = append(errs, domain.FieldError{Field: field + ".charity_id", Message: "required"})
		} else if seen[share.CharityID] {
			errs = append(errs, domain.FieldError{Field: field + ".charity_id", Message: "duplicate charity"})
		}
		seen[share.CharityID] = true

		if share.Percentage < 0 || share.Percentage > 100 {
			errs = append(errs, domain.FieldError{Field: field + ".percentage", Message: "must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
