package exchange

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/pkg/exception"
)

// CandleStore keeps the append-only candle series per pair and the
// process-wide last-seen timestamp cursor. The turn loop is strictly
// serialized, so no locking is needed here.
type CandleStore struct {
	series   map[string][]model.Candle
	lastTime int64
}

// NewCandleStore creates an empty store.
func NewCandleStore() *CandleStore {
	return &CandleStore{
		series: make(map[string][]model.Candle),
	}
}

// Append adds a candle to its pair's series, creating the series on
// first reference, and advances the last-seen timestamp cursor.
func (s *CandleStore) Append(candle model.Candle) {
	s.series[candle.Pair] = append(s.series[candle.Pair], candle)
	s.lastTime = candle.Time
}

// LastPrice returns the close of the most recent candle for the pair.
func (s *CandleStore) LastPrice(pairID string) (decimal.Decimal, error) {
	candles := s.series[pairID]
	if len(candles) == 0 {
		return decimal.Decimal{}, errors.Wrap(exception.ErrNoData, pairID)
	}
	return candles[len(candles)-1].Close, nil
}

// Last returns the most recent candle for the pair.
func (s *CandleStore) Last(pairID string) (model.Candle, error) {
	candles := s.series[pairID]
	if len(candles) == 0 {
		return model.Candle{}, errors.Wrap(exception.ErrNoData, pairID)
	}
	return candles[len(candles)-1], nil
}

// Candles returns the full series for the pair, oldest first.
func (s *CandleStore) Candles(pairID string) []model.Candle {
	return s.series[pairID]
}

// LastTime returns the timestamp of the most recently appended candle
// across all pairs, in milliseconds. Zero until the first candle lands.
func (s *CandleStore) LastTime() int64 {
	return s.lastTime
}
