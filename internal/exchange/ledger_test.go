package exchange

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/codec"
)

func TestLedgerReplaceAll(t *testing.T) {
	ledger := NewLedger()

	stacks, err := codec.ParseStacks("BTC:0.5,ETH:10,USDT:1000")
	require.NoError(t, err)
	ledger.ReplaceAll(stacks)

	btc, ok := ledger.Balance("BTC")
	require.True(t, ok)
	assert.Equal(t, "0.5", btc.String())

	usdt, ok := ledger.Balance("USDT")
	require.True(t, ok)
	assert.Equal(t, "1000", usdt.String())
}

func TestLedgerReplaceAllIsNotAMerge(t *testing.T) {
	ledger := NewLedger()

	first, err := codec.ParseStacks("BTC:1,ETH:2")
	require.NoError(t, err)
	ledger.ReplaceAll(first)

	second, err := codec.ParseStacks("USDT:500")
	require.NoError(t, err)
	ledger.ReplaceAll(second)

	_, ok := ledger.Balance("BTC")
	assert.False(t, ok, "BTC should be gone after full replace")
	_, ok = ledger.Balance("ETH")
	assert.False(t, ok, "ETH should be gone after full replace")

	usdt, ok := ledger.Balance("USDT")
	require.True(t, ok)
	assert.Equal(t, "500", usdt.String())
	assert.Equal(t, 1, ledger.Assets())
}

func TestLedgerDebit(t *testing.T) {
	ledger := NewLedger()
	stacks, err := codec.ParseStacks("USDT:1000")
	require.NoError(t, err)
	ledger.ReplaceAll(stacks)

	ledger.Debit("USDT", decimal.NewFromInt(400))

	balance, ok := ledger.Balance("USDT")
	require.True(t, ok)
	assert.Equal(t, "600", balance.String())

	// debit does not floor at zero; sufficiency is the engine's check
	ledger.Debit("USDT", decimal.NewFromInt(1000))
	balance, _ = ledger.Balance("USDT")
	assert.Equal(t, "-400", balance.String())
}

func TestLedgerUnknownAsset(t *testing.T) {
	ledger := NewLedger()

	_, ok := ledger.Balance("DOGE")
	assert.False(t, ok)
}
