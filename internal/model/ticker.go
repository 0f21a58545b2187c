package model

import "github.com/shopspring/decimal"

// Ticker is a point-in-time price summary built from the most recent
// candle of a pair.
type Ticker struct {
	Symbol     string
	Timestamp  int64
	High       decimal.Decimal
	Low        decimal.Decimal
	Open       decimal.Decimal
	Close      decimal.Decimal
	Last       decimal.Decimal
	BaseVolume decimal.Decimal
}
