package models

import (
	"fmt"
	"sync"
)

// Default limits applied by NewRuleSet.
const (
	DefaultMaxDebt     = 100.0
	DefaultMaxLendDays = 30
)

// RuleSet holds the household's advisory policies, such as the maximum
// tolerated debt. Breaching a rule never raises an error; it only produces
// a notice text for display.
type RuleSet struct {
	mu          sync.RWMutex
	maxDebt     float64
	maxLendDays int
}

// NewRuleSet returns a RuleSet with the default limits.
func NewRuleSet() *RuleSet {
	return &RuleSet{maxDebt: DefaultMaxDebt, maxLendDays: DefaultMaxLendDays}
}

// MaxDebt returns the maximum tolerated debt in EUR.
func (r *RuleSet) MaxDebt() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxDebt
}

// SetMaxDebt sets the maximum tolerated debt in EUR.
func (r *RuleSet) SetMaxDebt(maxDebt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxDebt = maxDebt
}

// MaxLendDays returns the maximum lending period in days.
func (r *RuleSet) MaxLendDays() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxLendDays
}

// SetMaxLendDays sets the maximum lending period in days.
func (r *RuleSet) SetMaxLendDays(days int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxLendDays = days
}

// DebtWarning returns a notice when balance is strictly below -MaxDebt.
// The second return value reports whether a notice was produced; a balance
// exactly at the limit stays silent.
func (r *RuleSet) DebtWarning(name string, balance float64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if balance < -r.maxDebt {
		return fmt.Sprintf("notice: %s has %.2f EUR of debt and exceeds the limit of %.2f EUR",
			name, balance, r.maxDebt), true
	}
	return "", false
}
