package dispatch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/exchange"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/order"
	"main/internal/strategy"
	"main/internal/venue"
	"main/pkg/exception"
)

// scripted places one fixed order per step.
type scripted struct {
	pair   string
	side   enum.OrderSide
	amount decimal.Decimal
}

func (s scripted) Step(x strategy.Exchange, timebank int) {
	_, _ = x.CreateOrder(s.pair, s.side, s.amount)
}

type rig struct {
	dispatcher *Dispatcher
	store      *exchange.CandleStore
	ledger     *exchange.Ledger
	registry   *exchange.Registry
	engine     *order.Engine
	settings   *model.GameSettings
	metrics    *obs.Metrics
	out        *bytes.Buffer
	errOut     *bytes.Buffer
}

func newRig(t *testing.T, bot strategy.Strategy) *rig {
	t.Helper()
	store := exchange.NewCandleStore()
	ledger := exchange.NewLedger()
	registry := exchange.NewRegistry()
	engine := order.NewEngine(store, ledger, registry)
	settings := model.NewGameSettings()
	metrics := obs.NewMetrics()
	engine.SetMetrics(metrics)
	v := venue.New(store, ledger, registry, engine, settings)

	d := New(bot, v, store, ledger, registry, engine, settings, metrics)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	d.SetOutput(out)
	d.SetErrOutput(errOut)

	return &rig{
		dispatcher: d,
		store:      store,
		ledger:     ledger,
		registry:   registry,
		engine:     engine,
		settings:   settings,
		metrics:    metrics,
		out:        out,
		errOut:     errOut,
	}
}

func (r *rig) handle(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, r.dispatcher.HandleLine(line), "line: %s", line)
	}
}

func TestDispatcherSettings(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t,
		"settings timebank 10000",
		"settings time_per_move 100",
		"settings candle_interval 1800",
		"settings candles_total 336",
		"settings candles_given 96",
		"settings initial_stack 1000",
		"settings transaction_fee_percent 0.2",
		"settings your_bot player0",
	)

	assert.Equal(t, 10000, r.settings.Timebank)
	assert.Equal(t, 100, r.settings.TimePerMove)
	assert.Equal(t, 1800, r.settings.CandleInterval)
	assert.Equal(t, 336, r.settings.CandlesTotal)
	assert.Equal(t, 96, r.settings.CandlesGiven)
	assert.Equal(t, 1000, r.settings.InitialStack)
	assert.Equal(t, "0.2", r.settings.TransactionFeePercent.String())
	assert.Equal(t, "player0", r.settings.Extra["your_bot"])
}

func TestDispatcherSettingsMalformedInt(t *testing.T) {
	r := newRig(t, strategy.NewNoop())

	err := r.dispatcher.HandleLine("settings timebank soon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, exception.ErrMalformedInput), "err: %v", err)
}

func TestDispatcherNextCandlesRegistersMarkets(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t, "update game next_candles USDT_BTC,1516753800,11,9,10,10000,120;BTC_ETH,1516753800,0.1,0.08,0.09,0.095,55")

	require.Len(t, r.registry.Markets(), 2)

	price, err := r.store.LastPrice("USDT_BTC")
	require.NoError(t, err)
	assert.Equal(t, "10000", price.String())
	assert.Equal(t, int64(1516753800000), r.store.LastTime())
}

func TestDispatcherCandleFormatOverride(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t,
		"settings candle_format close,pair,date",
		"update game next_candles 9999,USDT_BTC,1516753800",
	)

	price, err := r.store.LastPrice("USDT_BTC")
	require.NoError(t, err)
	assert.Equal(t, "9999", price.String())
}

func TestDispatcherStacks(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t, "update game stacks BTC:0.5,USDT:1000")

	usdt, ok := r.ledger.Balance("USDT")
	require.True(t, ok)
	assert.Equal(t, "1000", usdt.String())

	// a later broadcast replaces the whole table
	r.handle(t, "update game stacks ETH:2")
	_, ok = r.ledger.Balance("USDT")
	assert.False(t, ok)
}

func TestDispatcherUnknownGameKeyIsNotFatal(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t, "update game weather sunny")
	assert.Empty(t, r.errOut.String())
}

func TestDispatcherUnknownCommand(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t, "teleport game data")

	assert.Equal(t, "Unable to execute command: teleport, with data: game data\n", r.errOut.String())
	assert.Equal(t, uint64(1), r.metrics.Snapshot().UnknownCommands)
}

func TestDispatcherActionOrderPass(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t, "action order 10000")

	assert.Equal(t, "pass\n", r.out.String())
}

func TestDispatcherActionOrderWithTrade(t *testing.T) {
	bot := scripted{pair: "USDT_BTC", side: enum.OrderSideBuy, amount: decimal.NewFromFloat(0.05)}
	r := newRig(t, bot)
	r.handle(t,
		"update game next_candles USDT_BTC,1516753800,11,9,10,10000,120",
		"update game stacks USDT:1000",
		"action order 10000",
	)

	assert.Equal(t, "buy USDT_BTC 0.05\n", r.out.String())

	usdt, _ := r.ledger.Balance("USDT")
	assert.Equal(t, "500", usdt.String())

	// the queue was flushed; the next turn passes again
	r.out.Reset()
	r.handle(t, "update game stacks USDT:100", "action order 10000")
	assert.Equal(t, "pass\n", r.out.String())
}

func TestDispatcherIgnoresOtherActions(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.handle(t, "action dance 10000")
	assert.Empty(t, r.out.String())
}

func TestDispatcherMalformedBatchAbortsThatLineOnly(t *testing.T) {
	r := newRig(t, strategy.NewNoop())

	err := r.dispatcher.HandleLine("update game next_candles USDT_BTC,now,1,1,1,1,1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, exception.ErrMalformedInput), "err: %v", err)
	assert.Empty(t, r.store.Candles("USDT_BTC"))

	// the loop keeps going afterwards
	r.handle(t, "update game next_candles USDT_BTC,1516753800,1,1,1,10000,1")
	price, err := r.store.LastPrice("USDT_BTC")
	require.NoError(t, err)
	assert.Equal(t, "10000", price.String())
}

func TestDispatcherRunSession(t *testing.T) {
	bot := scripted{pair: "USDT_BTC", side: enum.OrderSideSell, amount: decimal.NewFromInt(333)}
	r := newRig(t, bot)

	session := strings.Join([]string{
		"settings candle_format pair,date,high,low,open,close,volume",
		"settings initial_stack 1000",
		"update game next_candles USDT_BTC,1516753800,11,9,10,10000,120",
		"update game stacks BTC:500,USDT:1000",
		"action order 10000",
		"",
	}, "\n")

	require.NoError(t, r.dispatcher.Run(strings.NewReader(session)))
	assert.Equal(t, "sell USDT_BTC 333\n", r.out.String())

	snapshot := r.metrics.Snapshot()
	assert.Equal(t, uint64(5), snapshot.LinesHandled)
	assert.Equal(t, uint64(1), snapshot.CandlesIngested)
	assert.Equal(t, uint64(1), snapshot.StackUpdates)
	assert.Equal(t, uint64(1), snapshot.OrdersAccepted)
}

func TestDispatcherRunContinuesAfterBadLine(t *testing.T) {
	r := newRig(t, strategy.NewNoop())

	session := "update game next_candles USDT_BTC,now,1,1,1,1,1\naction order 10000\n"
	require.NoError(t, r.dispatcher.Run(strings.NewReader(session)))
	assert.Equal(t, "pass\n", r.out.String())
}

func TestDispatcherRunStopsOnWriteFailure(t *testing.T) {
	r := newRig(t, strategy.NewNoop())
	r.dispatcher.SetOutput(failingWriter{})

	err := r.dispatcher.Run(strings.NewReader("action order 10000\naction order 10000\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, exception.ErrWriteFailed), "err: %v", err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}
