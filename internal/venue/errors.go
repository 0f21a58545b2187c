package venue

import (
	"github.com/yanun0323/errors"

	"main/pkg/exception"
)

func errUnknownMarket(pairID string) error {
	return errors.Wrap(exception.ErrUnknownMarket, pairID)
}
