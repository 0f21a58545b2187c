package exchange

import "main/internal/model"

// Registry maps pair identifiers to their base/quote decomposition.
// Pairs are registered on first reference from candle input and deduped
// by identifier; the split is derived once and never recomputed.
type Registry struct {
	markets    []model.Market
	marketByID map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		marketByID: make(map[string]int),
	}
}

// Ensure registers the pair if it is unknown and returns its market.
func (r *Registry) Ensure(pairID string) (model.Market, error) {
	if idx, ok := r.marketByID[pairID]; ok {
		return r.markets[idx], nil
	}

	market, err := model.NewMarket(pairID)
	if err != nil {
		return model.Market{}, err
	}
	r.marketByID[pairID] = len(r.markets)
	r.markets = append(r.markets, market)
	return market, nil
}

// Market returns the registered market for the pair identifier.
func (r *Registry) Market(pairID string) (model.Market, bool) {
	idx, ok := r.marketByID[pairID]
	if !ok {
		return model.Market{}, false
	}
	return r.markets[idx], true
}

// Markets returns all registered markets in registration order.
func (r *Registry) Markets() []model.Market {
	return r.markets
}
