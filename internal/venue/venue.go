package venue

import (
	"github.com/shopspring/decimal"

	"main/internal/exchange"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/order"
)

// Venue is the exchange-API surface strategies trade through. It adapts
// the raw proxy state (candles, stacks, markets) into the conventional
// exchange vocabulary — tickers, balances with free/used/total, fees —
// and routes orders into the engine.
type Venue struct {
	store    *exchange.CandleStore
	ledger   *exchange.Ledger
	registry *exchange.Registry
	engine   *order.Engine
	settings *model.GameSettings
}

// New wires a venue over the shared proxy state.
func New(store *exchange.CandleStore, ledger *exchange.Ledger, registry *exchange.Registry, engine *order.Engine, settings *model.GameSettings) *Venue {
	return &Venue{
		store:    store,
		ledger:   ledger,
		registry: registry,
		engine:   engine,
		settings: settings,
	}
}

// Balance is an account entry in exchange terms. The simulated venue has
// no locked funds, so Used is always zero and Total equals Free.
type Balance struct {
	Free  decimal.Decimal
	Used  decimal.Decimal
	Total decimal.Decimal
}

// Markets lists every registered market.
func (v *Venue) Markets() []model.Market {
	return v.registry.Markets()
}

// Market resolves a pair identifier.
func (v *Venue) Market(pairID string) (model.Market, bool) {
	return v.registry.Market(pairID)
}

// Balance returns the account entry for one asset.
func (v *Venue) Balance(asset string) (Balance, bool) {
	free, ok := v.ledger.Balance(asset)
	if !ok {
		return Balance{}, false
	}
	return Balance{Free: free, Total: free}, true
}

// Balances returns the full account table keyed by asset.
func (v *Venue) Balances() map[string]Balance {
	balances := make(map[string]Balance, v.ledger.Assets())
	v.ledger.Each(func(asset string, amount decimal.Decimal) {
		balances[asset] = Balance{Free: amount, Total: amount}
	})
	return balances
}

// FreeBalance returns the spendable amount for one asset; assets the
// venue has never broadcast count as zero.
func (v *Venue) FreeBalance(asset string) decimal.Decimal {
	free, _ := v.ledger.Balance(asset)
	return free
}

// Ticker builds a price summary from the pair's most recent candle.
func (v *Venue) Ticker(pairID string) (model.Ticker, error) {
	last, err := v.store.Last(pairID)
	if err != nil {
		return model.Ticker{}, err
	}

	symbol := pairID
	if market, ok := v.registry.Market(pairID); ok {
		symbol = market.Symbol
	}

	return model.Ticker{
		Symbol:     symbol,
		Timestamp:  last.Time,
		High:       last.High,
		Low:        last.Low,
		Open:       last.Open,
		Close:      last.Close,
		Last:       last.Close,
		BaseVolume: last.Volume,
	}, nil
}

// OHLCV returns the pair's candle series, oldest first.
func (v *Venue) OHLCV(pairID string) []model.Candle {
	return v.store.Candles(pairID)
}

// LastPrice returns the close of the pair's most recent candle.
func (v *Venue) LastPrice(pairID string) (decimal.Decimal, error) {
	return v.store.LastPrice(pairID)
}

// CreateOrder places a market order through the engine.
func (v *Venue) CreateOrder(pairID string, side enum.OrderSide, amount decimal.Decimal) (model.Receipt, error) {
	return v.engine.Place(pairID, amount, side)
}

// CalculateFee estimates the trading fee for an order. The fee is taken
// in the quote asset when selling and in the base asset when buying.
func (v *Venue) CalculateFee(pairID string, side enum.OrderSide, amount, price decimal.Decimal) (model.Fee, error) {
	market, ok := v.registry.Market(pairID)
	if !ok {
		return model.Fee{}, errUnknownMarket(pairID)
	}

	rate := v.settings.FeeRate()
	cost := amount.Mul(rate)
	currency := market.Base
	if side == enum.OrderSideSell {
		cost = cost.Mul(price)
		currency = market.Quote
	}

	return model.Fee{
		Currency: currency,
		Rate:     rate,
		Cost:     cost,
	}, nil
}
