package codec

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/pkg/exception"
	"main/pkg/scanner"
)

const (
	candleGroupSep = ';'
	candleFieldSep = ','
)

// Candle field keys understood by the parser. Keys outside this set are
// accepted in a format string and skipped during parsing.
const (
	candleKeyPair   = "pair"
	candleKeyDate   = "date"
	candleKeyHigh   = "high"
	candleKeyLow    = "low"
	candleKeyOpen   = "open"
	candleKeyClose  = "close"
	candleKeyVolume = "volume"
)

// CandleFormat is the positional field order of a candle group on the
// wire. The engine may override it with `settings candle_format`.
type CandleFormat []string

// DefaultCandleFormat is the field order used until the engine says
// otherwise.
func DefaultCandleFormat() CandleFormat {
	return CandleFormat{
		candleKeyPair,
		candleKeyDate,
		candleKeyHigh,
		candleKeyLow,
		candleKeyOpen,
		candleKeyClose,
		candleKeyVolume,
	}
}

// ParseCandleFormat builds a format from a comma-joined key list.
func ParseCandleFormat(payload string) CandleFormat {
	format := make(CandleFormat, 0, scanner.CountFields(payload, candleFieldSep))
	scanner.Fields(payload, candleFieldSep, func(field string) bool {
		format = append(format, field)
		return true
	})
	return format
}

// ParseCandles decodes a `;`-joined batch of `,`-joined candle groups in
// the given field order. The date field arrives in seconds and is scaled
// to milliseconds. A field that fails numeric coercion aborts the whole
// batch with exception.ErrMalformedInput.
func ParseCandles(format CandleFormat, batch string) ([]model.Candle, error) {
	if len(format) == 0 {
		format = DefaultCandleFormat()
	}

	candles := make([]model.Candle, 0, scanner.CountFields(batch, candleGroupSep))
	var parseErr error
	scanner.Fields(batch, candleGroupSep, func(group string) bool {
		candle, err := parseCandleGroup(format, group)
		if err != nil {
			parseErr = err
			return false
		}
		candles = append(candles, candle)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return candles, nil
}

func parseCandleGroup(format CandleFormat, group string) (model.Candle, error) {
	var (
		candle model.Candle
		index  int
		err    error
	)
	scanner.Fields(group, candleFieldSep, func(field string) bool {
		if index >= len(format) {
			return false
		}
		key := format[index]
		index++

		switch key {
		case candleKeyPair:
			candle.Pair = field
		case candleKeyDate:
			seconds, convErr := strconv.ParseInt(field, 10, 64)
			if convErr != nil {
				err = errors.Wrapf(exception.ErrMalformedInput, "candle date %q", field)
				return false
			}
			candle.Time = seconds * 1000
		case candleKeyHigh:
			candle.High, err = parseCandlePrice(key, field)
		case candleKeyLow:
			candle.Low, err = parseCandlePrice(key, field)
		case candleKeyOpen:
			candle.Open, err = parseCandlePrice(key, field)
		case candleKeyClose:
			candle.Close, err = parseCandlePrice(key, field)
		case candleKeyVolume:
			candle.Volume, err = parseCandlePrice(key, field)
		default:
			// unknown keys are allowed in a custom format and skipped
		}
		return err == nil
	})
	if err != nil {
		return model.Candle{}, err
	}
	if candle.Pair == "" {
		return model.Candle{}, errors.Wrap(exception.ErrMalformedInput, "candle group without pair")
	}

	return candle, nil
}

func parseCandlePrice(key, field string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(exception.ErrMalformedInput, "candle %s %q", key, field)
	}
	return value, nil
}
