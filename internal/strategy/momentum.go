package strategy

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/model/enum"
)

// Momentum is a naive reference strategy: it follows the direction of
// the last two closes, buying with a fixed fraction of the quote stack
// on an up-tick and selling the same fraction of the base stack on a
// down-tick. It exists to exercise the full order path, not to win.
type Momentum struct {
	fraction decimal.Decimal
}

// NewMomentum creates a momentum strategy spending the given fraction
// (0 < fraction <= 1) of the available stack per signal.
func NewMomentum(fraction decimal.Decimal) *Momentum {
	return &Momentum{fraction: fraction}
}

func (s *Momentum) Step(x Exchange, timebank int) {
	for _, market := range x.Markets() {
		candles := x.OHLCV(market.ID)
		if len(candles) < 2 {
			continue
		}

		prev := candles[len(candles)-2].Close
		last := candles[len(candles)-1].Close
		switch {
		case last.GreaterThan(prev):
			s.buy(x, market, last)
		case last.LessThan(prev):
			s.sell(x, market)
		}
	}
}

func (s *Momentum) buy(x Exchange, market model.Market, price decimal.Decimal) {
	quote := x.FreeBalance(market.Quote)
	if !quote.IsPositive() || !price.IsPositive() {
		return
	}

	amount := quote.Mul(s.fraction).DivRound(price, 8)
	if !amount.IsPositive() {
		return
	}

	if _, err := x.CreateOrder(market.ID, enum.OrderSideBuy, amount); err != nil {
		logs.Errorf("momentum: buy %s %s rejected, err: %+v", amount, market.ID, err)
	}
}

func (s *Momentum) sell(x Exchange, market model.Market) {
	base := x.FreeBalance(market.Base)
	if !base.IsPositive() {
		return
	}

	amount := base.Mul(s.fraction)
	if !amount.IsPositive() {
		return
	}

	if _, err := x.CreateOrder(market.ID, enum.OrderSideSell, amount); err != nil {
		logs.Errorf("momentum: sell %s %s rejected, err: %+v", amount, market.ID, err)
	}
}
