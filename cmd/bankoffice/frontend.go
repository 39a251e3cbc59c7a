package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/domain"
	"github.com/bankoffice/bankoffice/internal/usecase"
)

// maxFileAmount is the largest amount the daily file format can carry.
var maxFileAmount = decimal.NewFromInt(100000)

var errInputClosed = errors.New("input closed")

// menuOrder is the display order of transaction commands; each session mode
// sees only its allowed subset.
var menuOrder = []domain.Command{
	domain.CommandWithdrawal,
	domain.CommandDeposit,
	domain.CommandTransfer,
	domain.CommandPayBill,
	domain.CommandCreate,
	domain.CommandDelete,
	domain.CommandDisable,
	domain.CommandChangePlan,
	domain.CommandLogout,
}

// frontEnd owns all free-form user text. The engine only ever sees validated
// primitives: five-digit account numbers, non-negative decimals, approved
// company codes and holder names of at most twenty characters.
type frontEnd struct {
	in         *bufio.Scanner
	out        io.Writer
	controller *usecase.Controller
	processor  *usecase.Processor
	session    *domain.Session
	validate   *validator.Validate
}

func newFrontEnd(
	in io.Reader,
	out io.Writer,
	controller *usecase.Controller,
	processor *usecase.Processor,
	session *domain.Session,
) *frontEnd {
	v := validator.New()
	v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative() && d.LessThan(maxFileAmount)
	})

	return &frontEnd{
		in:         bufio.NewScanner(in),
		out:        out,
		controller: controller,
		processor:  processor,
		session:    session,
		validate:   v,
	}
}

// run drives one full session: login, command loop, logout.
func (f *frontEnd) run() error {
	if err := f.login(); err != nil {
		f.failure(err)
		return err
	}

	for {
		f.printMenu()

		raw, ok := f.prompt("command")
		if !ok {
			// Input closed mid-session: still flush the daily file.
			return f.controller.Logout()
		}

		command := domain.Command(strings.ToLower(strings.TrimSpace(raw)))
		if command == domain.CommandLogout {
			if err := f.controller.Logout(); err != nil {
				f.failure(err)
				continue
			}
			f.success("logged out")
			return nil
		}

		if err := f.controller.Authorize(command); err != nil {
			f.failure(err)
			continue
		}

		f.dispatch(command)
	}
}

func (f *frontEnd) login() error {
	raw, ok := f.prompt("session type (standard/admin)")
	if !ok {
		return errInputClosed
	}

	mode := domain.Mode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.IsValid() {
		return fmt.Errorf("invalid session type %q", strings.TrimSpace(raw))
	}

	holder := ""
	if mode == domain.ModeStandard {
		name, err := f.promptHolderName()
		if err != nil {
			return err
		}
		holder = name
	}

	if err := f.controller.Login(mode, holder); err != nil {
		return err
	}

	f.success(fmt.Sprintf("logged in, mode: %s", mode))
	return nil
}

func (f *frontEnd) dispatch(command domain.Command) {
	switch command {
	case domain.CommandWithdrawal:
		f.handleWithdrawal()
	case domain.CommandTransfer:
		f.handleTransfer()
	case domain.CommandPayBill:
		f.handlePayBill()
	case domain.CommandDeposit:
		f.handleDeposit()
	case domain.CommandCreate:
		f.handleCreate()
	case domain.CommandDelete:
		f.handleDelete()
	case domain.CommandDisable:
		f.handleDisable()
	case domain.CommandChangePlan:
		f.handleChangePlan()
	case domain.CommandLogin:
		f.failure(domain.ErrAlreadyLoggedIn)
	default:
		fmt.Fprintf(f.out, "unknown command %q\n", command)
	}
}

func (f *frontEnd) handleWithdrawal() {
	number, err := f.promptAccountNumber("account number")
	if err != nil {
		f.failure(err)
		return
	}
	amount, err := f.promptPositiveAmount("amount")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.Withdrawal(number, amount); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("withdrawal of $%s successful", amount.StringFixed(2)))
}

func (f *frontEnd) handleTransfer() {
	from, err := f.promptAccountNumber("from account number")
	if err != nil {
		f.failure(err)
		return
	}
	to, err := f.promptAccountNumber("to account number")
	if err != nil {
		f.failure(err)
		return
	}
	amount, err := f.promptPositiveAmount("amount")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.Transfer(from, to, amount); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("transfer of $%s successful", amount.StringFixed(2)))
}

func (f *frontEnd) handlePayBill() {
	number, err := f.promptAccountNumber("account number")
	if err != nil {
		f.failure(err)
		return
	}
	company, err := f.promptCompany()
	if err != nil {
		f.failure(err)
		return
	}
	amount, err := f.promptPositiveAmount("amount")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.PayBill(number, company, amount); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("paybill of $%s successful", amount.StringFixed(2)))
}

func (f *frontEnd) handleDeposit() {
	number, err := f.promptAccountNumber("account number")
	if err != nil {
		f.failure(err)
		return
	}
	amount, err := f.promptPositiveAmount("amount")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.Deposit(number, amount); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("deposit of $%s successful", amount.StringFixed(2)))
}

func (f *frontEnd) handleCreate() {
	name, err := f.promptHolderName()
	if err != nil {
		f.failure(err)
		return
	}
	initial, err := f.promptAmount("initial balance")
	if err != nil {
		f.failure(err)
		return
	}
	number, err := f.processor.Create(name, initial)
	if err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("account %s created", number))
}

func (f *frontEnd) handleDelete() {
	name, err := f.promptHolderName()
	if err != nil {
		f.failure(err)
		return
	}
	number, err := f.promptAccountNumber("account number")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.Delete(name, number); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("account %s deleted", number))
}

func (f *frontEnd) handleDisable() {
	name, err := f.promptHolderName()
	if err != nil {
		f.failure(err)
		return
	}
	number, err := f.promptAccountNumber("account number")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.Disable(name, number); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("account %s disabled", number))
}

func (f *frontEnd) handleChangePlan() {
	number, err := f.promptAccountNumber("account number")
	if err != nil {
		f.failure(err)
		return
	}
	if err := f.processor.ChangePlan(number); err != nil {
		f.failure(err)
		return
	}
	f.success(fmt.Sprintf("account %s moved to the non-student plan", number))
}

func (f *frontEnd) promptAccountNumber(label string) (string, error) {
	raw, ok := f.prompt(label)
	if !ok {
		return "", errInputClosed
	}
	number := strings.TrimSpace(raw)
	if err := f.validate.Var(number, "required,len=5,number"); err != nil {
		return "", fmt.Errorf("account number must be exactly five digits")
	}
	return number, nil
}

func (f *frontEnd) promptHolderName() (string, error) {
	raw, ok := f.prompt("account holder name")
	if !ok {
		return "", errInputClosed
	}
	name := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if err := f.validate.Var(name, "required,max=20"); err != nil {
		return "", fmt.Errorf("holder name must be between 1 and 20 characters")
	}
	return name, nil
}

func (f *frontEnd) promptCompany() (string, error) {
	raw, ok := f.prompt("company (EC/CQ/FI)")
	if !ok {
		return "", errInputClosed
	}
	company := strings.ToUpper(strings.TrimSpace(raw))
	if err := f.validate.Var(company, "required,oneof=EC CQ FI"); err != nil {
		return "", fmt.Errorf("company must be one of EC, CQ, FI")
	}
	return company, nil
}

func (f *frontEnd) promptAmount(label string) (decimal.Decimal, error) {
	raw, ok := f.prompt(label)
	if !ok {
		return decimal.Zero, errInputClosed
	}
	value := strings.TrimSpace(raw)
	if err := f.validate.Var(value, "required,amount"); err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a non-negative decimal below 100000.00")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a non-negative decimal below 100000.00")
	}
	return amount, nil
}

func (f *frontEnd) promptPositiveAmount(label string) (decimal.Decimal, error) {
	amount, err := f.promptAmount(label)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

func (f *frontEnd) printMenu() {
	var commands []string
	for _, command := range menuOrder {
		if f.session.CanExecute(command) {
			commands = append(commands, string(command))
		}
	}
	fmt.Fprintf(f.out, "\ncommands: %s\n", strings.Join(commands, " "))
}

func (f *frontEnd) prompt(label string) (string, bool) {
	fmt.Fprintf(f.out, "%s: ", label)
	if !f.in.Scan() {
		return "", false
	}
	return f.in.Text(), true
}

func (f *frontEnd) success(msg string) {
	fmt.Fprintln(f.out, msg)
}

func (f *frontEnd) failure(err error) {
	fmt.Fprintf(f.out, "error: %v\n", err)
}
