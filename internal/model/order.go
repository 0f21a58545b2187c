package model

import (
	"github.com/shopspring/decimal"

	"main/internal/model/enum"
)

// Order is an accepted trade waiting for the next protocol flush.
type Order struct {
	Side   enum.OrderSide
	Pair   string
	Amount decimal.Decimal
}

// Receipt confirms an accepted order to the caller. It is informational
// only and never persisted; the venue fills every accepted order
// immediately and completely.
type Receipt struct {
	Time      int64
	ID        int64
	Type      enum.OrderType
	Side      enum.OrderSide
	Price     decimal.Decimal
	Amount    decimal.Decimal
	Filled    decimal.Decimal
	Remaining decimal.Decimal
	Status    enum.OrderStatus
	Symbol    string
	Fee       *Fee
}

// Fee is a trading fee amount in a specific currency.
type Fee struct {
	Currency string
	Rate     decimal.Decimal
	Cost     decimal.Decimal
}
