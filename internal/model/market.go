package model

import (
	"main/pkg/exception"
	"main/pkg/scanner"
)

// Market is a tradable pair on the simulated venue.
//
// The engine identifies pairs as "QUOTE_BASE": the component before the
// underscore is the quote asset, the one after is the base asset. Pricing
// depends on this split, so it is derived exactly once here.
type Market struct {
	ID     string
	Symbol string
	Base   string
	Quote  string
}

// NewMarket decomposes a pair identifier into a Market.
func NewMarket(pairID string) (Market, error) {
	quote, base, ok := scanner.Cut(pairID, '_')
	if !ok || quote == "" || base == "" {
		return Market{}, exception.ErrInvalidPairID
	}
	return Market{
		ID:     pairID,
		Symbol: base + "/" + quote,
		Base:   base,
		Quote:  quote,
	}, nil
}
