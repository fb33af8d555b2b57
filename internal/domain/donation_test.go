package domain

import (
	"testing"
)

func TestDonationRecordID_Deterministic(t *testing.T) {
	t.Parallel()

	a := DonationRecordID("tx-1", "charity-1")
	b := DonationRecordID("tx-1", "charity-1")

	if a != b {
		t.Fatalf("same inputs produced different ids: %s vs %s", a, b)
	}
}

func TestDonationRecordID_DistinctPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		tx1, charity1   string
		tx2, charity2   string
	}{
		{"different charity", "tx-1", "charity-1", "tx-1", "charity-2"},
		{"different transaction", "tx-1", "charity-1", "tx-2", "charity-1"},
		{"swapped fields", "alpha", "beta", "beta", "alpha"},
		{"concatenation collision", "ab", "c", "a", "bc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := DonationRecordID(tt.tx1, tt.charity1)
			b := DonationRecordID(tt.tx2, tt.charity2)
			if a == b {
				t.Fatalf("distinct pairs collided on %s", a)
			}
		})
	}
}
