package order

import (
	"io"

	"github.com/shopspring/decimal"

	"main/internal/codec"
	"main/internal/exchange"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/pkg/exception"
)

// Engine validates trades against the ledger and last candle data,
// debits the funding currency, and queues accepted orders until the next
// protocol flush. Placement is a single-shot validate-then-commit: the
// venue fills every accepted order immediately and completely, so there
// are no partial or pending lifecycle states.
type Engine struct {
	store    *exchange.CandleStore
	ledger   *exchange.Ledger
	registry *exchange.Registry

	pending []model.Order
	orderID int64
	metrics *obs.Metrics
}

// NewEngine wires an engine to the shared market state.
func NewEngine(store *exchange.CandleStore, ledger *exchange.Ledger, registry *exchange.Registry) *Engine {
	return &Engine{
		store:    store,
		ledger:   ledger,
		registry: registry,
	}
}

// SetMetrics attaches optional order counters.
func (e *Engine) SetMetrics(m *obs.Metrics) {
	e.metrics = m
}

// Place validates and commits one market order.
//
// Buying costs `amount × last close` of the quote asset; selling costs
// `amount` of the base asset. The check and the debit are atomic from
// the caller's point of view: a rejected order leaves the ledger
// untouched. Proceeds are NOT credited here — the updated balance
// arrives with the engine's next stacks broadcast, mirroring the
// venue's settlement lag.
func (e *Engine) Place(pairID string, amount decimal.Decimal, side enum.OrderSide) (model.Receipt, error) {
	if e == nil {
		return model.Receipt{}, exception.ErrOrderNilEngine
	}

	receipt, err := e.place(pairID, amount, side)
	if err != nil {
		e.metrics.IncOrderRejected()
		return model.Receipt{}, err
	}
	e.metrics.IncOrderAccepted()
	return receipt, nil
}

func (e *Engine) place(pairID string, amount decimal.Decimal, side enum.OrderSide) (model.Receipt, error) {
	if !side.IsAvailable() {
		return model.Receipt{}, exception.ErrInvalidSide
	}
	if !amount.IsPositive() {
		return model.Receipt{}, exception.ErrInvalidAmount
	}

	market, ok := e.registry.Market(pairID)
	if !ok {
		return model.Receipt{}, exception.ErrUnknownMarket
	}

	funding := market.Base
	if side == enum.OrderSideBuy {
		funding = market.Quote
	}

	closePrice, err := e.store.LastPrice(pairID)
	if err != nil {
		return model.Receipt{}, err
	}

	required := amount
	if side == enum.OrderSideBuy {
		required = amount.Mul(closePrice)
	}

	// an asset the ledger has never seen counts as a zero balance
	balance, _ := e.ledger.Balance(funding)
	if balance.LessThan(required) {
		return model.Receipt{}, &InsufficientFundsError{
			Side:      side,
			Pair:      market.ID,
			Base:      market.Base,
			Requested: amount,
			Required:  required,
			Currency:  funding,
			Available: balance,
		}
	}

	e.ledger.Debit(funding, required)
	e.pending = append(e.pending, model.Order{
		Side:   side,
		Pair:   market.ID,
		Amount: amount,
	})
	e.orderID++

	return model.Receipt{
		Time:      e.store.LastTime(),
		ID:        e.orderID,
		Type:      enum.OrderTypeMarket,
		Side:      side,
		Price:     closePrice,
		Amount:    amount,
		Filled:    amount,
		Remaining: decimal.Decimal{},
		Status:    enum.OrderStatusOpen,
		Symbol:    market.Symbol,
		Fee:       nil,
	}, nil
}

// Pending returns the orders accepted since the last flush.
func (e *Engine) Pending() []model.Order {
	return e.pending
}

// Flush serializes the pending orders (or the pass token) to the sink as
// one newline-terminated line. The queue is cleared only after the write
// succeeds; the returned error is the write's completion signal.
func (e *Engine) Flush(w io.Writer) error {
	payload := codec.AppendOrders(nil, e.pending)
	payload = append(payload, '\n')

	if _, err := w.Write(payload); err != nil {
		return err
	}

	e.pending = e.pending[:0]
	return nil
}
