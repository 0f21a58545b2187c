package dispatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/exchange"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/order"
	"main/internal/strategy"
	"main/internal/venue"
	"main/pkg/exception"
)

// Dispatcher owns the turn loop: it parses each engine line, routes it
// to the exchange state, and runs one strategy step per action request.
// Every failure is local to the line that caused it; only a failed
// response write stops the loop.
type Dispatcher struct {
	bot      strategy.Strategy
	venue    *venue.Venue
	store    *exchange.CandleStore
	ledger   *exchange.Ledger
	registry *exchange.Registry
	engine   *order.Engine
	settings *model.GameSettings
	metrics  *obs.Metrics

	format codec.CandleFormat
	out    io.Writer
	errOut io.Writer
}

// New wires a dispatcher over the shared proxy state. Output defaults
// to stdout/stderr; see SetOutput and SetErrOutput.
func New(bot strategy.Strategy, v *venue.Venue, store *exchange.CandleStore, ledger *exchange.Ledger, registry *exchange.Registry, engine *order.Engine, settings *model.GameSettings, metrics *obs.Metrics) *Dispatcher {
	return &Dispatcher{
		bot:      bot,
		venue:    v,
		store:    store,
		ledger:   ledger,
		registry: registry,
		engine:   engine,
		settings: settings,
		metrics:  metrics,
		format:   codec.DefaultCandleFormat(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// SetOutput injects the response sink.
func (d *Dispatcher) SetOutput(w io.Writer) {
	d.out = w
}

// SetErrOutput injects the sink for unknown-command reports.
func (d *Dispatcher) SetErrOutput(w io.Writer) {
	d.errOut = w
}

// Run consumes lines until the input closes. Per-line errors are logged
// and the loop continues; a failed response write is returned.
func (d *Dispatcher) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := d.HandleLine(sc.Text()); err != nil {
			if errors.Is(err, exception.ErrWriteFailed) {
				return err
			}
			logs.Errorf("handle line, err: %+v", err)
		}
	}
	return sc.Err()
}

// HandleLine processes one engine input line.
func (d *Dispatcher) HandleLine(line string) error {
	d.metrics.IncLine()

	cmd, err := codec.ParseLine(line)
	switch {
	case err == nil:
	case errors.Is(err, exception.ErrEmptyLine):
		return nil
	case errors.Is(err, exception.ErrUnknownCommand):
		d.metrics.IncUnknownCommand()
		fmt.Fprintf(d.errOut, "Unable to execute command: %s, with data: %s\n", cmd.Name, cmd.Args)
		return nil
	default:
		return err
	}

	switch cmd.Kind {
	case enum.CommandSettings:
		return d.applySettings(cmd.Key, cmd.Value)
	case enum.CommandUpdate:
		return d.applyGameData(cmd)
	case enum.CommandAction:
		return d.handleAction(cmd)
	default:
		return nil
	}
}

func (d *Dispatcher) applySettings(key, value string) error {
	switch key {
	case "candle_format":
		d.format = codec.ParseCandleFormat(value)
		return nil
	case "transaction_fee_percent":
		fee, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("settings %s %q: %w", key, value, exception.ErrMalformedInput)
		}
		d.settings.TransactionFeePercent = fee
		return nil
	case "timebank", "time_per_move", "candle_interval", "candles_total", "candles_given", "initial_stack":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("settings %s %q: %w", key, value, exception.ErrMalformedInput)
		}
		d.applyIntSetting(key, n)
		return nil
	default:
		d.settings.Extra[key] = value
		return nil
	}
}

func (d *Dispatcher) applyIntSetting(key string, n int) {
	switch key {
	case "timebank":
		d.settings.Timebank = n
	case "time_per_move":
		d.settings.TimePerMove = n
	case "candle_interval":
		d.settings.CandleInterval = n
	case "candles_total":
		d.settings.CandlesTotal = n
	case "candles_given":
		d.settings.CandlesGiven = n
	case "initial_stack":
		d.settings.InitialStack = n
	}
}

func (d *Dispatcher) applyGameData(cmd codec.Command) error {
	switch cmd.GameData {
	case enum.GameDataNextCandles:
		candles, err := codec.ParseCandles(d.format, cmd.Value)
		if err != nil {
			return err
		}
		for _, candle := range candles {
			// markets come into existence on first candle reference
			if _, err := d.registry.Ensure(candle.Pair); err != nil {
				return err
			}
			d.store.Append(candle)
		}
		d.metrics.AddCandles(len(candles))
		return nil
	case enum.GameDataStacks:
		stacks, err := codec.ParseStacks(cmd.Value)
		if err != nil {
			return err
		}
		d.ledger.ReplaceAll(stacks)
		d.metrics.IncStackUpdate()
		return nil
	default:
		logs.Errorf("cannot parse game data input with key %s", cmd.Key)
		return nil
	}
}

func (d *Dispatcher) handleAction(cmd codec.Command) error {
	if cmd.Action != "order" {
		// the engine only ever asks for orders; anything else is noise
		return nil
	}

	d.bot.Step(d.venue, cmd.Timebank)

	if err := d.engine.Flush(d.out); err != nil {
		return fmt.Errorf("flush orders: %s: %w", err, exception.ErrWriteFailed)
	}
	return nil
}
