package codec

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/pkg/exception"
	"main/pkg/scanner"
)

const (
	stackEntrySep  = ','
	stackAmountSep = ':'
)

// Stack is one asset balance entry from a `stacks` broadcast.
type Stack struct {
	Asset  string
	Amount decimal.Decimal
}

// ParseStacks decodes a comma-joined list of `asset:amount` entries.
// A malformed entry aborts the whole batch.
func ParseStacks(batch string) ([]Stack, error) {
	stacks := make([]Stack, 0, scanner.CountFields(batch, stackEntrySep))
	var parseErr error
	scanner.Fields(batch, stackEntrySep, func(entry string) bool {
		asset, raw, ok := scanner.Cut(entry, stackAmountSep)
		if !ok || asset == "" {
			parseErr = errors.Wrapf(exception.ErrMalformedInput, "stack entry %q", entry)
			return false
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			parseErr = errors.Wrapf(exception.ErrMalformedInput, "stack amount %q", raw)
			return false
		}
		stacks = append(stacks, Stack{Asset: asset, Amount: amount})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return stacks, nil
}
