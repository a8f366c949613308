package types

import (
	"cosmossdk.io/math"
)

// MultiplierDecimals is the number of fractional decimal digits carried
// by the round multiplier.
const MultiplierDecimals = 12

// MultiplierScale is 10^12, the fixed-point scale of the multiplier.
var MultiplierScale = math.NewIntWithDecimal(1, MultiplierDecimals)

// DefaultMultiplier returns the 1.0 multiplier used before any round has
// completed its investing phase.
func DefaultMultiplier() math.Int {
	return math.NewIntWithDecimal(1, MultiplierDecimals)
}

// ComputeMultiplier returns floor(after * 10^12 / before). Division
// truncates toward zero so the fund can never owe more than it holds;
// the rounding remainder stays in the pool as dust. A zero before-amount
// means no deposits entered the round, in which case the multiplier
// stays at its default 1.0.
func ComputeMultiplier(before, after math.Int) (math.Int, error) {
	if before.IsZero() {
		return DefaultMultiplier(), nil
	}
	scaled, err := checkedMul(after, MultiplierScale)
	if err != nil {
		return math.Int{}, err
	}
	return scaled.Quo(before), nil
}

// ApplyMultiplier returns floor(deposit * multiplier / 10^12), the payout
// owed to an investor with the given deposit.
func ApplyMultiplier(deposit, multiplier math.Int) (math.Int, error) {
	scaled, err := checkedMul(deposit, multiplier)
	if err != nil {
		return math.Int{}, err
	}
	return scaled.Quo(MultiplierScale), nil
}

// checkedMul multiplies two amounts, converting the 256-bit overflow
// panic from math.Int into an error so callers abort instead of wrapping.
func checkedMul(a, b math.Int) (res math.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = math.Int{}
			err = ErrAmountOverflow.Wrapf("%s * %s exceeds 256 bits", a, b)
		}
	}()
	return a.Mul(b), nil
}
