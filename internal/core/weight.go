package core

import (
	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// AccrueWeight advances an accrued weight from lastUpdated to now:
//
//	weight' = weight + floor(amount * growthRate * elapsedSeconds)
//
// The same linear coin-seconds accrual applies to a single bond and to the
// global index. Weight never decays; changing the amount only changes the
// accrual rate going forward. Elapsed time is clamped at zero so historical
// snapshot queries against positions updated later do not run backwards.
func AccrueWeight(weight, amount sdkmath.Int, growthRate sdkmath.LegacyDec, lastUpdated, now int64) sdkmath.Int {
	elapsed := now - lastUpdated
	if elapsed <= 0 || amount.IsZero() {
		return weight
	}
	accrued := growthRate.MulInt(amount).MulInt64(elapsed).TruncateInt()
	return weight.Add(accrued)
}

// BondWeightAt recomputes a bond's weight as of the given instant without
// mutating the bond.
func BondWeightAt(bond types.Bond, growthRate sdkmath.LegacyDec, now int64) sdkmath.Int {
	return AccrueWeight(bond.Weight, bond.Amount, growthRate, bond.LastUpdated, now)
}

// GlobalWeightAt recomputes the global index weight as of the given instant.
func GlobalWeightAt(index types.GlobalIndex, growthRate sdkmath.LegacyDec, now int64) sdkmath.Int {
	return AccrueWeight(index.Weight, index.BondedAmount, growthRate, index.LastUpdated, now)
}

// SlashWeight returns the portion of an accrued weight attributable to the
// unbonded amount. Unbonding removes weight in proportion to the amount
// leaving the position, so the remaining stake keeps its share of the
// accumulated history. Unbonding the whole position removes the whole weight.
func SlashWeight(weight, unbondAmount, bondedAmount sdkmath.Int) sdkmath.Int {
	if bondedAmount.IsZero() {
		return sdkmath.ZeroInt()
	}
	if unbondAmount.GTE(bondedAmount) {
		return weight
	}
	return sdkmath.LegacyNewDecFromInt(weight).
		MulInt(unbondAmount).QuoInt(bondedAmount).TruncateInt()
}

// Share is the fraction of the global weight held by the given weight. A
// global weight of zero (nobody has ever bonded) yields a zero share.
func Share(weight, globalWeight sdkmath.Int) sdkmath.LegacyDec {
	if globalWeight.IsZero() {
		return sdkmath.LegacyZeroDec()
	}
	return sdkmath.LegacyNewDecFromInt(weight).QuoInt(globalWeight)
}
