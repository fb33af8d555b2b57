package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// AllocationTolerance is the epsilon used when checking that a user's active
// allocation percentages sum to 100.
const AllocationTolerance = 0.01

// DefaultMaxActivePreferences caps how many charities a user can support at once.
const DefaultMaxActivePreferences = 5

// CharityPreference is a user's relationship to one charity.
//
// Inactive preferences are excluded from distribution and from the
// sums-to-100 invariant, but kept for history: donation records may still
// reference the charity.
type CharityPreference struct {
	ID                   uuid.UUID
	UserID               string
	CharityID            string
	AllocationPercentage float64
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CharityShare is one entry of a ready-to-use distribution: the percentage of
// the donation pool directed to a charity.
type CharityShare struct {
	CharityID  string
	Percentage float64
}

// TotalAllocation sums the allocation percentages of the given preferences.
func TotalAllocation(prefs []CharityPreference) float64 {
	var total float64
	for _, p := range prefs {
		total += p.AllocationPercentage
	}
	return total
}

// AllocationTotalValid reports whether total is within AllocationTolerance of 100.
func AllocationTotalValid(total float64) bool {
	return math.Abs(total-100) <= AllocationTolerance
}

// AllocationUninitialized reports whether a non-empty preference set has never
// been explicitly allocated (every percentage is zero). Such a set triggers
// the equal-split bootstrap on read.
func AllocationUninitialized(prefs []CharityPreference) bool {
	if len(prefs) == 0 {
		return false
	}
	return TotalAllocation(prefs) == 0
}

// EqualSplit returns the percentage each of n charities receives under the
// equal-split bootstrap.
func EqualSplit(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 100 / float64(n)
}
