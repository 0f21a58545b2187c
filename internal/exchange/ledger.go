package exchange

import (
	"github.com/shopspring/decimal"

	"main/internal/codec"
)

// Ledger is the per-asset free-balance table. A `stacks` broadcast
// replaces the whole table; the ledger keeps no memory of assets missing
// from the latest update.
type Ledger struct {
	balances map[string]decimal.Decimal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]decimal.Decimal),
	}
}

// ReplaceAll clears the ledger and installs the given entries.
func (l *Ledger) ReplaceAll(stacks []codec.Stack) {
	for asset := range l.balances {
		delete(l.balances, asset)
	}
	for _, stack := range stacks {
		l.balances[stack.Asset] = stack.Amount
	}
}

// Balance returns the free balance for the asset. The second return is
// false when the asset has never been recorded.
func (l *Ledger) Balance(asset string) (decimal.Decimal, bool) {
	balance, ok := l.balances[asset]
	return balance, ok
}

// Debit decreases the stored balance by amount. It does not floor at
// zero; sufficiency is the caller's pre-check.
func (l *Ledger) Debit(asset string, amount decimal.Decimal) {
	l.balances[asset] = l.balances[asset].Sub(amount)
}

// Assets returns the number of recorded assets.
func (l *Ledger) Assets() int {
	return len(l.balances)
}

// Each calls fn for every recorded asset. Iteration order is not
// defined.
func (l *Ledger) Each(fn func(asset string, amount decimal.Decimal)) {
	for asset, amount := range l.balances {
		fn(asset, amount)
	}
}
