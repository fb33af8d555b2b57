package domain

import (
	"math"
	"testing"
)

func TestTotalAllocation(t *testing.T) {
	t.Parallel()

	prefs := []CharityPreference{
		{AllocationPercentage: 60},
		{AllocationPercentage: 30},
		{AllocationPercentage: 10},
	}

	if got := TotalAllocation(prefs); got != 100 {
		t.Fatalf("total = %v, want 100", got)
	}
	if got := TotalAllocation(nil); got != 0 {
		t.Fatalf("empty total = %v, want 0", got)
	}
}

func TestAllocationTotalValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total float64
		want  bool
	}{
		{"exact", 100, true},
		{"within tolerance below", 99.995, true},
		{"within tolerance above", 100.01, true},
		{"too low", 99.9, false},
		{"too high", 100.02, false},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AllocationTotalValid(tt.total); got != tt.want {
				t.Fatalf("AllocationTotalValid(%v) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestAllocationUninitialized(t *testing.T) {
	t.Parallel()

	zeroed := []CharityPreference{{}, {}, {}}
	if !AllocationUninitialized(zeroed) {
		t.Fatal("all-zero set should be uninitialized")
	}

	allocated := []CharityPreference{{AllocationPercentage: 100}}
	if AllocationUninitialized(allocated) {
		t.Fatal("allocated set should not be uninitialized")
	}

	if AllocationUninitialized(nil) {
		t.Fatal("empty set is not uninitialized; it is a distinct non-error state")
	}
}

func TestEqualSplit(t *testing.T) {
	t.Parallel()

	if got := EqualSplit(4); got != 25 {
		t.Fatalf("EqualSplit(4) = %v, want 25", got)
	}

	third := EqualSplit(3)
	if math.Abs(third*3-100) > 1e-9 {
		t.Fatalf("EqualSplit(3)*3 = %v, want 100", third*3)
	}

	if got := EqualSplit(0); got != 0 {
		t.Fatalf("EqualSplit(0) = %v, want 0", got)
	}
}
