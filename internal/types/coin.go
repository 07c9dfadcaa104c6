package types

import (
	"fmt"
	"sort"

	sdkmath "cosmossdk.io/math"
)

// Coin is a single-denom token amount. Amounts are arbitrary precision
// integers; any arithmetic that would overflow the internal representation
// panics, which is the intended behavior for invariant breaches.
type Coin struct {
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

func NewCoin(denom string, amount sdkmath.Int) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func NewInt64Coin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: sdkmath.NewInt(amount)}
}

func (c Coin) IsZero() bool {
	return c.Amount.IsNil() || c.Amount.IsZero()
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}

// Coins is a per-denom fee vector, kept sorted by denom and free of
// zero-amount entries. It is the single merge/subtract primitive used
// everywhere fee vectors are combined, so zero pruning cannot be forgotten
// at individual call sites.
type Coins []Coin

// NewCoins normalizes the given coins: duplicates are merged, zero amounts
// pruned, and the result sorted by denom.
func NewCoins(coins ...Coin) Coins {
	var out Coins
	for _, c := range coins {
		out = out.Aggregate(c)
	}
	return out
}

// AmountOf returns the amount held for the given denom, zero if absent.
func (cs Coins) AmountOf(denom string) sdkmath.Int {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return sdkmath.ZeroInt()
}

// Aggregate merges a single coin into the vector, keeping the vector sorted
// and pruning the entry when the resulting amount is zero.
func (cs Coins) Aggregate(coin Coin) Coins {
	if coin.IsZero() {
		return cs
	}
	out := make(Coins, 0, len(cs)+1)
	merged := false
	for _, c := range cs {
		if c.Denom == coin.Denom {
			c.Amount = c.Amount.Add(coin.Amount)
			merged = true
		}
		if !c.Amount.IsZero() {
			out = append(out, c)
		}
	}
	if !merged {
		out = append(out, coin)
		sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	}
	return out
}

// AggregateAll merges another vector into this one.
func (cs Coins) AggregateAll(other Coins) Coins {
	out := cs
	for _, c := range other {
		out = out.Aggregate(c)
	}
	return out
}

// Subtract removes the given coin from the vector. It fails when the vector
// holds less than the subtracted amount; amounts never go negative.
func (cs Coins) Subtract(coin Coin) (Coins, error) {
	if coin.IsZero() {
		return cs, nil
	}
	held := cs.AmountOf(coin.Denom)
	if held.LT(coin.Amount) {
		return nil, fmt.Errorf("cannot subtract %s from %s %s", coin.String(), held.String(), coin.Denom)
	}
	out := make(Coins, 0, len(cs))
	for _, c := range cs {
		if c.Denom == coin.Denom {
			c.Amount = c.Amount.Sub(coin.Amount)
		}
		if !c.Amount.IsZero() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (cs Coins) IsZero() bool {
	for _, c := range cs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (cs Coins) Clone() Coins {
	out := make(Coins, len(cs))
	copy(out, cs)
	return out
}

func (cs Coins) String() string {
	if len(cs) == 0 {
		return ""
	}
	s := cs[0].String()
	for _, c := range cs[1:] {
		s += "," + c.String()
	}
	return s
}
