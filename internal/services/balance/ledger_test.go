package balance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTransfer(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()
	ledger.Deposit("alice", 100)

	t.Run("successful transfer", func(t *testing.T) {
		require.NoError(t, ledger.Transfer(ctx, "alice", "bob", 40))

		aliceBal, _ := ledger.Balance(ctx, "alice")
		bobBal, _ := ledger.Balance(ctx, "bob")
		assert.Equal(t, uint64(60), aliceBal)
		assert.Equal(t, uint64(40), bobBal)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		err := ledger.Transfer(ctx, "alice", "bob", 1000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("unknown account holds zero", func(t *testing.T) {
		bal, err := ledger.Balance(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), bal)

		err = ledger.Transfer(ctx, "nobody", "bob", 1)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("zero amount is a no-op leg", func(t *testing.T) {
		require.NoError(t, ledger.Transfer(ctx, "nobody", "bob", 0))
	})
}

func TestLedgerApplyBatchAtomicity(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()
	ledger.Deposit("customer", 100)

	// Second leg overdraws; the first leg must not stick.
	err := ledger.ApplyBatch(ctx, []Transfer{
		{From: "customer", To: "merchant", Amount: 80},
		{From: "customer", To: "operator", Amount: 30},
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	customerBal, _ := ledger.Balance(ctx, "customer")
	merchantBal, _ := ledger.Balance(ctx, "merchant")
	operatorBal, _ := ledger.Balance(ctx, "operator")
	assert.Equal(t, uint64(100), customerBal)
	assert.Equal(t, uint64(0), merchantBal)
	assert.Equal(t, uint64(0), operatorBal)

	// A batch whose legs together exactly drain the account applies cleanly.
	require.NoError(t, ledger.ApplyBatch(ctx, []Transfer{
		{From: "customer", To: "merchant", Amount: 80},
		{From: "customer", To: "operator", Amount: 20},
	}))
	customerBal, _ = ledger.Balance(ctx, "customer")
	assert.Equal(t, uint64(0), customerBal)
}
