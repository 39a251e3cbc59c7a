package domain

import "github.com/shopspring/decimal"

// Status is the lifecycle state of an account as stored in the master file.
type Status string

const (
	StatusActive   Status = "A"
	StatusDisabled Status = "D"
)

// Plan is the fee plan of an account.
type Plan string

const (
	PlanStudent    Plan = "SP"
	PlanNonStudent Plan = "NP"
)

// Account represents a single bank account loaded from the account master file.
type Account struct {
	Number     string
	HolderName string
	Balance    decimal.Decimal
	Status     Status
	Plan       Plan
}

// IsActive reports whether the account can take part in transactions.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// IsStudent reports whether the account is on the student plan.
func (a *Account) IsStudent() bool {
	return a.Plan == PlanStudent
}

// Debit subtracts amount from the balance. Sufficiency is checked by the
// transaction engine before this is called.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Disable marks the account disabled. The transition is one-way.
func (a *Account) Disable() {
	a.Status = StatusDisabled
}
