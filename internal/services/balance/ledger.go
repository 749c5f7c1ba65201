package balance

import (
	"context"
	"sync"
)

// Ledger is the in-memory reference implementation of Service. Unknown
// accounts hold a zero balance. All mutation goes through one mutex, which
// also gives batches their all-or-nothing behavior: legs are validated
// against a staged copy before anything commits.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]uint64
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]uint64)}
}

// Deposit credits an account directly. Used to fund accounts in tests and
// the dev server; the gateway itself never mints balance.
func (l *Ledger) Deposit(account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

func (l *Ledger) Balance(_ context.Context, account string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account], nil
}

func (l *Ledger) Transfer(ctx context.Context, from, to string, amount uint64) error {
	return l.ApplyBatch(ctx, []Transfer{{From: from, To: to, Amount: amount}})
}

func (l *Ledger) ApplyBatch(_ context.Context, transfers []Transfer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Stage the affected accounts, replay every leg against the stage, and
	// only then write back. A failed leg leaves the live map untouched.
	staged := make(map[string]uint64, len(transfers)*2)
	for _, t := range transfers {
		if _, ok := staged[t.From]; !ok {
			staged[t.From] = l.balances[t.From]
		}
		if _, ok := staged[t.To]; !ok {
			staged[t.To] = l.balances[t.To]
		}
	}
	for _, t := range transfers {
		if staged[t.From] < t.Amount {
			return ErrInsufficientFunds
		}
		staged[t.From] -= t.Amount
		staged[t.To] += t.Amount
	}
	for account, bal := range staged {
		l.balances[account] = bal
	}
	return nil
}
