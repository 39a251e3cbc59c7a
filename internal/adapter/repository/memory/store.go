// Package memory holds the session-lifetime mutable state: the account store
// loaded from the master file and the daily transaction log.
package memory

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/adapter/repository/flatfile"
	"github.com/bankoffice/bankoffice/internal/domain"
)

// AccountStore keeps accounts keyed by account number for the lifetime of one
// login session. It is owned by a single session and is not safe for
// concurrent use.
type AccountStore struct {
	accounts map[string]*domain.Account
}

// NewAccountStore returns an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain.Account)}
}

// Load replaces the store contents with the accounts parsed from r. Duplicate
// account numbers overwrite each other, last one wins. On error the previous
// contents are kept.
func (s *AccountStore) Load(r io.Reader) error {
	accounts, err := flatfile.ReadAccounts(r)
	if err != nil {
		return err
	}

	replacement := make(map[string]*domain.Account, len(accounts))
	for _, account := range accounts {
		replacement[account.Number] = account
	}
	s.accounts = replacement

	return nil
}

// FindByNumber returns the account with the given number.
func (s *AccountStore) FindByNumber(number string) (*domain.Account, bool) {
	account, ok := s.accounts[number]
	return account, ok
}

// FindByName returns the account held by name. When several accounts share a
// holder name the one with the lowest account number wins, so repeated lookups
// are deterministic.
func (s *AccountStore) FindByName(name string) (*domain.Account, bool) {
	var found *domain.Account
	for _, account := range s.accounts {
		if account.HolderName != name {
			continue
		}
		if found == nil || account.Number < found.Number {
			found = account
		}
	}
	return found, found != nil
}

// Debit subtracts amount from the account balance. No bound checking happens
// here; validation is the transaction engine's job.
func (s *AccountStore) Debit(account *domain.Account, amount decimal.Decimal) {
	account.Debit(amount)
}

// Credit adds amount to the account balance.
func (s *AccountStore) Credit(account *domain.Account, amount decimal.Decimal) {
	account.Credit(amount)
}

// Disable marks the account disabled. No-op when the account does not exist.
func (s *AccountStore) Disable(number string) {
	if account, ok := s.accounts[number]; ok {
		account.Disable()
	}
}

// Delete removes the account. No-op when the account does not exist.
func (s *AccountStore) Delete(number string) {
	delete(s.accounts, number)
}

// ChangePlanToNonStudent moves the account off the student plan. No-op when
// the account is absent or already non-student.
func (s *AccountStore) ChangePlanToNonStudent(number string) {
	if account, ok := s.accounts[number]; ok && account.IsStudent() {
		account.Plan = domain.PlanNonStudent
	}
}

// NextNumber returns "00001" for an empty store, otherwise the highest
// existing account number plus one, zero-padded to five digits. Overflow past
// five digits is not handled.
func (s *AccountStore) NextNumber() string {
	if len(s.accounts) == 0 {
		return "00001"
	}

	highest := 0
	for number := range s.accounts {
		n, err := strconv.Atoi(number)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%05d", highest+1)
}

// Len returns the number of loaded accounts.
func (s *AccountStore) Len() int {
	return len(s.accounts)
}
