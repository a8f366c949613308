package types

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
)

// TestComputeMultiplier tests the fixed-point multiplier over gain, loss,
// break-even, and empty-round cases
func TestComputeMultiplier(t *testing.T) {
	testCases := []struct {
		name     string
		before   int64
		after    int64
		expected string
	}{
		{"fifty percent gain", 1000, 1500, "1500000000000"},
		{"small loss", 1000, 999, "999000000000"},
		{"break even", 1000, 1000, "1000000000000"},
		{"total loss", 1000, 0, "0"},
		{"doubling", 500, 1000, "2000000000000"},
		{"no deposits keeps default", 0, 1234, "1000000000000"},
		{"truncates toward zero", 3, 1, "333333333333"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			multiplier, err := ComputeMultiplier(math.NewInt(tc.before), math.NewInt(tc.after))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expected, _ := math.NewIntFromString(tc.expected)
			if !multiplier.Equal(expected) {
				t.Errorf("expected multiplier %s, got %s", expected, multiplier)
			}
		})
	}
}

// TestApplyMultiplier tests payout computation including truncation
func TestApplyMultiplier(t *testing.T) {
	testCases := []struct {
		name       string
		deposit    int64
		multiplier string
		expected   int64
	}{
		{"gain applies", 100, "1500000000000", 150},
		{"loss truncates", 7, "999000000000", 6},
		{"identity", 250, "1000000000000", 250},
		{"zero multiplier", 100, "0", 0},
		{"sub-unit payout truncates to zero", 1, "999999999999", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			multiplier, _ := math.NewIntFromString(tc.multiplier)
			payout, err := ApplyMultiplier(math.NewInt(tc.deposit), multiplier)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !payout.Equal(math.NewInt(tc.expected)) {
				t.Errorf("expected payout %d, got %s", tc.expected, payout)
			}
		})
	}
}

// TestApplyMultiplierNeverExceedsPool tests that summed truncated payouts
// cannot exceed what the pool holds
func TestApplyMultiplierNeverExceedsPool(t *testing.T) {
	deposits := []int64{7, 11, 13}
	before := math.NewInt(31)
	after := math.NewInt(30)

	multiplier, err := ComputeMultiplier(before, after)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := math.ZeroInt()
	for _, d := range deposits {
		payout, err := ApplyMultiplier(math.NewInt(d), multiplier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total = total.Add(payout)
	}

	if total.GT(after) {
		t.Errorf("payouts %s exceed pool %s", total, after)
	}
}

// TestMultiplierOverflow tests that a product past 256 bits surfaces as
// an error instead of a panic
func TestMultiplierOverflow(t *testing.T) {
	huge := math.NewIntWithDecimal(1, 70)

	_, err := ComputeMultiplier(math.NewInt(1), huge)
	if !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("expected ErrAmountOverflow from ComputeMultiplier, got %v", err)
	}

	_, err = ApplyMultiplier(huge, huge)
	if !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("expected ErrAmountOverflow from ApplyMultiplier, got %v", err)
	}
}

// TestDefaultMultiplier tests the 1.0 fixed-point representation
func TestDefaultMultiplier(t *testing.T) {
	if !DefaultMultiplier().Equal(MultiplierScale) {
		t.Errorf("expected default multiplier to equal the scale, got %s", DefaultMultiplier())
	}
}
