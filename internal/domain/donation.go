package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// donationNamespace is the fixed UUIDv5 namespace for donation record ids.
var donationNamespace = uuid.MustParse("9b2f1c2e-4a47-4f83-8f2d-6d1f5c0b47d1")

// DonationRecord is one realized, charity-attributed donation. Records are
// immutable once written and form the audit trail behind every dashboard view.
//
// ID is derived deterministically from (transactionID, charityID) so retried
// or duplicate purchase events cannot double-record; the storage layer backs
// it with a primary-key constraint.
type DonationRecord struct {
	ID                    uuid.UUID
	UserID                string
	CharityID             string
	DonationAmount        decimal.Decimal
	DonationDate          time.Time
	OriginalTransactionID string
	MerchantName          string
	ProductName           string
	CreatedAt             time.Time
}

// DonationRecordID derives the idempotency key for a (transaction, charity)
// pair. The NUL separator cannot appear in either field, so distinct pairs
// never collide on concatenation.
func DonationRecordID(transactionID, charityID string) uuid.UUID {
	return uuid.NewSHA1(donationNamespace, []byte(transactionID+"\x00"+charityID))
}

// CharityAmount is one charity's slice of a distribution.
type CharityAmount struct {
	CharityID string
	Amount    decimal.Decimal
}

// DistributionResult summarizes one distribution for the caller. Partial
// success is representable: FailedCharityIDs lists charities whose ledger
// write failed, while PerCharityAmounts always reflects the computed split.
type DistributionResult struct {
	TransactionID       string
	PurchaseAmount      decimal.Decimal
	CashbackRate        float64
	CashbackAmount      decimal.Decimal
	TotalDonationAmount decimal.Decimal
	PerCharityAmounts   []CharityAmount
	FailedCharityIDs    []string
}

// TransactionGroup bundles the donation records that share an originating
// purchase, for display. Merchant and product metadata come from the group's
// first record.
type TransactionGroup struct {
	TransactionID string
	MerchantName  string
	ProductName   string
	Date          time.Time
	TotalAmount   decimal.Decimal
	Donations     []DonationRecord
}

// DonationStats are the dashboard summary counters.
//
// TimesDonated is causesSupported * totalPurchases, the product, not the
// record count. The shipped dashboards display exactly this number, so it is
// preserved as observed.
type DonationStats struct {
	CausesSupported int
	TotalPurchases  int
	TimesDonated    int
}
