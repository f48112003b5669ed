package leave

import (
	"context"
	"fmt"
)

// Ledger is the single authority over an employee's remaining leave
// days. All balance movement goes through Reserve and Release, always
// inside the transaction of the state-machine step that triggered it.
type Ledger struct {
	store StoreAPI
}

func NewLedger(store StoreAPI) Ledger {
	return Ledger{store: store}
}

func (l Ledger) CanAfford(ctx context.Context, employeeID string, days int) (bool, error) {
	remaining, err := l.store.RemainingDays(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return days <= remaining, nil
}

// Reserve decrements the employee's balance by days. The decrement is
// guarded in storage, so a failed reserve leaves the balance untouched
// and the balance can never go negative.
func (l Ledger) Reserve(ctx context.Context, employeeID string, days int) error {
	ok, err := l.store.ReserveDays(ctx, employeeID, days)
	if err != nil {
		return fmt.Errorf("reserve %d leave days: %w", days, err)
	}
	if !ok {
		return ErrInsufficientBalance
	}
	return nil
}

// Release gives days back. Releasing is always safe: it only ever moves
// the balance away from zero.
func (l Ledger) Release(ctx context.Context, employeeID string, days int) error {
	if err := l.store.ReleaseDays(ctx, employeeID, days); err != nil {
		return fmt.Errorf("release %d leave days: %w", days, err)
	}
	return nil
}
