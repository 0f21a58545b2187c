package exception

import "errors"

var (
	ErrNoData        = errors.New("exchange: no candle data for pair")
	ErrUnknownMarket = errors.New("exchange: unknown market")
	ErrUnknownAsset  = errors.New("exchange: unknown asset")
	ErrInvalidPairID = errors.New("exchange: invalid pair identifier")
	ErrInvalidAmount = errors.New("exchange: invalid order amount")
	ErrInvalidSide   = errors.New("exchange: invalid order side")
)
