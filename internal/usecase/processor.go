package usecase

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/domain"
	"github.com/bankoffice/bankoffice/internal/infrastructure/metrics"
)

// Processor validates and executes the banking transactions of the active
// session. Every successful operation appends exactly one record to the
// transaction log; every failed validation performs no mutation and no append.
type Processor struct {
	store   AccountStore
	session *domain.Session
	log     TransactionRecorder
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewProcessor creates a new Processor.
func NewProcessor(
	store AccountStore,
	session *domain.Session,
	log TransactionRecorder,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *Processor {
	return &Processor{
		store:   store,
		session: session,
		log:     log,
		logger:  logger,
		metrics: m,
	}
}

// Withdrawal debits amount from the account and records a code 01 transaction.
func (p *Processor) Withdrawal(accountNumber string, amount decimal.Decimal) error {
	account, _ := p.store.FindByNumber(accountNumber)
	if err := p.validate(account, domain.CommandWithdrawal, &amount); err != nil {
		return p.declined(domain.CommandWithdrawal, err)
	}

	p.store.Debit(account, amount)
	p.session.RecordUsage(domain.CommandWithdrawal, amount)

	p.commit(domain.Transaction{
		Code:          domain.CodeWithdrawal,
		HolderName:    account.HolderName,
		AccountNumber: accountNumber,
		Amount:        amount,
	})

	return nil
}

// Transfer moves amount between two accounts. Both sides must individually
// pass validation. Only the source side is recorded in the log.
func (p *Processor) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	from, _ := p.store.FindByNumber(fromNumber)
	if err := p.validate(from, domain.CommandTransfer, &amount); err != nil {
		return p.declined(domain.CommandTransfer, err)
	}

	to, _ := p.store.FindByNumber(toNumber)
	if err := p.validate(to, domain.CommandTransfer, &amount); err != nil {
		return p.declined(domain.CommandTransfer, err)
	}

	p.store.Debit(from, amount)
	p.store.Credit(to, amount)
	p.session.RecordUsage(domain.CommandTransfer, amount)

	p.commit(domain.Transaction{
		Code:          domain.CodeTransfer,
		HolderName:    from.HolderName,
		AccountNumber: fromNumber,
		Amount:        amount,
	})

	return nil
}

// PayBill pays amount to an approved company and records a code 03
// transaction carrying the company code in the misc field.
func (p *Processor) PayBill(accountNumber, company string, amount decimal.Decimal) error {
	if !domain.ValidCompany(company) {
		return p.declined(domain.CommandPayBill,
			fmt.Errorf("%w: %q", domain.ErrUnknownCompany, company))
	}

	account, _ := p.store.FindByNumber(accountNumber)
	if err := p.validate(account, domain.CommandPayBill, &amount); err != nil {
		return p.declined(domain.CommandPayBill, err)
	}

	p.store.Debit(account, amount)
	p.session.RecordUsage(domain.CommandPayBill, amount)

	p.commit(domain.Transaction{
		Code:          domain.CodePayBill,
		HolderName:    account.HolderName,
		AccountNumber: accountNumber,
		Amount:        amount,
		Misc:          company,
	})

	return nil
}

// Deposit credits amount to the account and records a code 04 transaction.
// Deposits carry no per-session ceiling.
func (p *Processor) Deposit(accountNumber string, amount decimal.Decimal) error {
	account, _ := p.store.FindByNumber(accountNumber)
	if err := p.validate(account, domain.CommandDeposit, &amount); err != nil {
		return p.declined(domain.CommandDeposit, err)
	}

	p.store.Credit(account, amount)

	p.commit(domain.Transaction{
		Code:          domain.CodeDeposit,
		HolderName:    account.HolderName,
		AccountNumber: accountNumber,
		Amount:        amount,
	})

	return nil
}

// Create generates the next account number and records a code 05 transaction.
// The account is recorded in the daily file only and is not inserted into the
// store. The caller enforces the initial balance bounds before invocation.
func (p *Processor) Create(name string, initialBalance decimal.Decimal) (string, error) {
	number := p.store.NextNumber()

	p.commit(domain.Transaction{
		Code:          domain.CodeCreate,
		HolderName:    name,
		AccountNumber: number,
		Amount:        initialBalance,
	})

	return number, nil
}

// Delete removes the account from the store and records a code 06 transaction
// under the supplied holder name.
func (p *Processor) Delete(name, accountNumber string) error {
	account, _ := p.store.FindByNumber(accountNumber)
	if err := p.validate(account, domain.CommandDelete, nil); err != nil {
		return p.declined(domain.CommandDelete, err)
	}

	p.store.Delete(accountNumber)

	p.commit(domain.Transaction{
		Code:          domain.CodeDelete,
		HolderName:    name,
		AccountNumber: accountNumber,
		Amount:        decimal.Zero,
	})

	return nil
}

// Disable sets the account status to disabled and records a code 07
// transaction under the supplied holder name.
func (p *Processor) Disable(name, accountNumber string) error {
	account, _ := p.store.FindByNumber(accountNumber)
	if err := p.validate(account, domain.CommandDisable, nil); err != nil {
		return p.declined(domain.CommandDisable, err)
	}

	p.store.Disable(accountNumber)

	p.commit(domain.Transaction{
		Code:          domain.CodeDisable,
		HolderName:    name,
		AccountNumber: accountNumber,
		Amount:        decimal.Zero,
	})

	return nil
}

// ChangePlan moves a student account to the non-student plan and records a
// code 08 transaction.
func (p *Processor) ChangePlan(accountNumber string) error {
	account, _ := p.store.FindByNumber(accountNumber)

	zero := decimal.Zero
	if err := p.validate(account, domain.CommandChangePlan, &zero); err != nil {
		return p.declined(domain.CommandChangePlan, err)
	}
	if !account.IsStudent() {
		return p.declined(domain.CommandChangePlan,
			fmt.Errorf("%w: account %s", domain.ErrAlreadyNonStudent, accountNumber))
	}

	p.store.ChangePlanToNonStudent(accountNumber)

	p.commit(domain.Transaction{
		Code:          domain.CodeChangePlan,
		HolderName:    account.HolderName,
		AccountNumber: accountNumber,
		Amount:        decimal.Zero,
	})

	return nil
}

// validate runs the shared checks for every transaction, failing fast at the
// first violation. amount may be nil for kinds that carry no amount; ceiling
// and sufficiency checks run only for the amount-bearing kinds.
func (p *Processor) validate(account *domain.Account, kind domain.Command, amount *decimal.Decimal) error {
	if account == nil {
		return domain.ErrAccountNotFound
	}
	if !account.IsActive() {
		return fmt.Errorf("%w: account %s", domain.ErrAccountDisabled, account.Number)
	}
	if !p.session.IsAdmin() && p.session.CurrentUser() != account.HolderName {
		return fmt.Errorf("%w: account %s", domain.ErrNotOwner, account.Number)
	}

	ceiling, limited := sessionCeilings[kind]
	if !limited {
		return nil
	}

	if amount == nil {
		return domain.ErrAmountRequired
	}
	if account.Balance.LessThan(*amount) {
		return fmt.Errorf("%w: account %s", domain.ErrInsufficientFunds, account.Number)
	}
	if !p.session.IsAdmin() && p.session.Usage(kind).Add(*amount).GreaterThan(ceiling) {
		return fmt.Errorf("%w: %s ceiling is %s per session",
			domain.ErrLimitExceeded, kind, ceiling.StringFixed(2))
	}

	return nil
}

func (p *Processor) commit(t domain.Transaction) {
	p.log.Append(t)

	p.metrics.TransactionsCommitted.WithLabelValues(string(t.Code)).Inc()
	p.metrics.TransactionAmount.Observe(t.Amount.InexactFloat64())

	p.logger.Info().
		Str("session_id", p.session.ID()).
		Str("code", string(t.Code)).
		Str("account", t.AccountNumber).
		Str("amount", t.Amount.StringFixed(2)).
		Msg("transaction committed")
}

func (p *Processor) declined(kind domain.Command, err error) error {
	p.metrics.TransactionsDeclined.WithLabelValues(string(kind), declineReason(err)).Inc()

	p.logger.Warn().
		Str("session_id", p.session.ID()).
		Str("kind", string(kind)).
		Err(err).
		Msg("transaction declined")

	return err
}

func declineReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "account_disabled"
	case errors.Is(err, domain.ErrNotOwner):
		return "not_owner"
	case errors.Is(err, domain.ErrAmountRequired):
		return "amount_required"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, domain.ErrAlreadyNonStudent):
		return "already_non_student"
	case errors.Is(err, domain.ErrUnknownCompany):
		return "unknown_company"
	default:
		return "other"
	}
}
