package model

import "github.com/shopspring/decimal"

// GameSettings holds the engine configuration broadcast before the first
// round. Integer keys arrive as `settings <key> <value>` lines; anything
// unrecognized is kept verbatim in Extra.
type GameSettings struct {
	Timebank              int
	TimePerMove           int
	CandleInterval        int
	CandlesTotal          int
	CandlesGiven          int
	InitialStack          int
	TransactionFeePercent decimal.Decimal
	Extra                 map[string]string
}

// NewGameSettings returns settings with the engine defaults.
func NewGameSettings() *GameSettings {
	return &GameSettings{
		Extra: make(map[string]string),
	}
}

// FeeRate returns the fee fraction, e.g. 0.002 for a 0.2% fee.
func (s *GameSettings) FeeRate() decimal.Decimal {
	return s.TransactionFeePercent.Div(decimal.NewFromInt(100))
}
