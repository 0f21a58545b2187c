package model

import "github.com/shopspring/decimal"

// Candle is one OHLCV observation for a pair over a fixed interval.
// Time is in milliseconds; the engine sends seconds and the codec scales
// on the way in. Candles are append-only and never mutated.
type Candle struct {
	Pair   string
	Time   int64
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}
