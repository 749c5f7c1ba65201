// Package balance defines the contract of the account balance service the
// gateway settles against. Accounts are opaque string identifiers holding a
// non-negative integer balance; transfers are atomic, and a batch applies
// all of its transfers or none of them.
package balance

import (
	"context"
	"errors"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Transfer moves Amount from one account to another. A zero Amount is a
// valid no-op leg (a zero-fee refund still submits both legs).
type Transfer struct {
	From   string
	To     string
	Amount uint64
}

type Service interface {
	Balance(ctx context.Context, account string) (uint64, error)
	Transfer(ctx context.Context, from, to string, amount uint64) error

	// ApplyBatch validates and applies the transfers as a single unit.
	// If any leg would overdraw its source, no leg is applied and
	// ErrInsufficientFunds is returned.
	ApplyBatch(ctx context.Context, transfers []Transfer) error
}
