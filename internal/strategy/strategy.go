package strategy

import (
	"github.com/shopspring/decimal"

	"main/internal/model"
	"main/internal/model/enum"
)

// Exchange is the venue surface a strategy trades through. The dispatch
// loop hands a strategy one Step per `action order` line; everything the
// strategy does must happen inside that turn.
type Exchange interface {
	Markets() []model.Market
	FreeBalance(asset string) decimal.Decimal
	LastPrice(pairID string) (decimal.Decimal, error)
	OHLCV(pairID string) []model.Candle
	Ticker(pairID string) (model.Ticker, error)
	CreateOrder(pairID string, side enum.OrderSide, amount decimal.Decimal) (model.Receipt, error)
}

// Strategy decides what, if anything, to trade this turn. Orders placed
// through the exchange are flushed by the dispatcher after Step returns;
// placing nothing makes the bot pass.
type Strategy interface {
	Step(x Exchange, timebank int)
}
