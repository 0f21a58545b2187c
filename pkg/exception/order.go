package exception

import "errors"

var (
	ErrOrderNilEngine     = errors.New("order: nil engine")
	ErrOrderQueueNotEmpty = errors.New("order: queue not empty")
	ErrInsufficientFunds  = errors.New("order: insufficient funds")
)
