package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"main/internal/model/enum"
	"main/pkg/exception"
)

// InsufficientFundsError rejects an order whose funding balance cannot
// cover the required amount. The order is rejected before any mutation,
// so the ledger is exactly as it was.
type InsufficientFundsError struct {
	Side      enum.OrderSide
	Pair      string
	Base      string
	Requested decimal.Decimal
	Required  decimal.Decimal
	Currency  string
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough: you want to %s %s %s requiring %s %s on %s but you have only %s %s",
		e.Side, e.Requested, e.Base, e.Required, e.Currency, e.Pair, e.Available, e.Currency)
}

// Is lets errors.Is match against exception.ErrInsufficientFunds.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == exception.ErrInsufficientFunds
}
