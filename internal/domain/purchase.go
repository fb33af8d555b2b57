package domain

import (
	"github.com/shopspring/decimal"
)

// PurchaseEvent is a confirmed purchase at a partner merchant. It is an input
// to distribution and is not persisted by the engine itself.
//
// AutoDonationPercentage is the user-settings share of cashback that becomes
// the donation pool. It arrives as an input field so the distributor carries
// no settings dependency; the settings boundary validates its range.
type PurchaseEvent struct {
	TransactionID          string
	UserID                 string
	MerchantName           string
	ProductName            string
	GrossAmount            decimal.Decimal
	CashbackRate           float64
	AutoDonationPercentage float64
}

// CashbackAmount returns grossAmount * cashbackRate / 100.
func (e PurchaseEvent) CashbackAmount() decimal.Decimal {
	return e.GrossAmount.Mul(decimal.NewFromFloat(e.CashbackRate)).Div(decimal.NewFromInt(100))
}

// DonationPool returns the unrounded portion of cashback earmarked for donation.
func (e PurchaseEvent) DonationPool() decimal.Decimal {
	return e.CashbackAmount().Mul(decimal.NewFromFloat(e.AutoDonationPercentage)).Div(decimal.NewFromInt(100))
}
