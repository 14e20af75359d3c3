// Package treasury holds native-currency balances per identity. It stands in
// for the execution environment's value transfer: stakes, premiums and fees
// move from callers into the ledger vault, and payouts move back out.
package treasury

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/sentinel"
)

// MaxBalance is the largest balance any account may hold. It matches the
// signed 64-bit range of Redis integers so every backend agrees.
const MaxBalance domain.Amount = math.MaxInt64

// ErrBalanceOverflow is returned when a credit would push a balance past MaxBalance.
var ErrBalanceOverflow = errors.New("balance would exceed the treasury limit")

// fits reports whether balance can take amount more without passing MaxBalance.
func fits(balance, amount domain.Amount) bool {
	return amount <= MaxBalance && balance <= MaxBalance-amount
}

// Memory is an in-process treasury guarded by a mutex.
type Memory struct {
	mu       sync.RWMutex
	balances map[domain.Address]domain.Amount
}

func NewMemory() *Memory {
	return &Memory{balances: make(map[domain.Address]domain.Amount)}
}

// Mint credits amount to a out of thin air. Used for genesis balances.
func (m *Memory) Mint(_ context.Context, a domain.Address, amount domain.Amount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !fits(m.balances[a], amount) {
		return fmt.Errorf("mint %s to %s: %w", amount, a, ErrBalanceOverflow)
	}
	m.balances[a] += amount
	return nil
}

// Balance returns the balance of a.
func (m *Memory) Balance(_ context.Context, a domain.Address) (domain.Amount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[a], nil
}

// Transfer moves amount from one identity to another, failing with
// sentinel.ErrInsufficient when the source cannot cover it.
func (m *Memory) Transfer(_ context.Context, from, to domain.Address, amount domain.Amount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balances[from] < amount {
		return fmt.Errorf("transfer %s from %s: %w", amount, from, sentinel.ErrInsufficient)
	}
	if from != to && !fits(m.balances[to], amount) {
		return fmt.Errorf("transfer %s to %s: %w", amount, to, ErrBalanceOverflow)
	}
	m.balances[from] -= amount
	m.balances[to] += amount
	return nil
}
