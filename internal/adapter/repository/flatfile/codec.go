// Package flatfile implements the fixed-width record formats of the account
// master file and the daily transaction file.
package flatfile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/domain"
)

// EndOfFileMarker terminates the account master file.
const EndOfFileMarker = "END_OF_FILE"

// Account master line layout: cols 0-4 account number, col 5 separator,
// cols 6-25 holder name, cols 26-28 reserved, col 29 status, cols 30-36
// balance digits.
const (
	accountLineWidth = 37

	numberStart  = 0
	numberEnd    = 5
	nameStart    = 6
	nameEnd      = 26
	statusPos    = 29
	balanceStart = 30
	balanceEnd   = 37
)

// Transaction line layout: CC NAME(20) NNNNN DDDDD.CC MM.
const (
	txCodeStart   = 0
	txCodeEnd     = 2
	txNameStart   = 3
	txNameEnd     = 23
	txNumberStart = 24
	txNumberEnd   = 29
	txAmountStart = 30
	txAmountEnd   = 38
	txMiscStart   = 39
	txMiscEnd     = 41
)

var hundred = decimal.NewFromInt(100)

// ParseAccountLine parses one fixed-width line of the account master file.
// Holder names are lowercased, trimmed of trailing spaces, and internal runs
// of spaces collapse to a single space. Accounts load on the student plan;
// the master file carries no plan field.
func ParseAccountLine(line string) (*domain.Account, error) {
	if len(line) < accountLineWidth {
		return nil, fmt.Errorf("%w: line is %d characters, want at least %d",
			domain.ErrMalformedRecord, len(line), accountLineWidth)
	}

	balance, err := parseAmountField(line[balanceStart:balanceEnd])
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		Number:     line[numberStart:numberEnd],
		HolderName: normalizeName(line[nameStart:nameEnd]),
		Balance:    balance,
		Status:     domain.Status(line[statusPos : statusPos+1]),
		Plan:       domain.PlanStudent,
	}, nil
}

// FormatTransaction renders t as one fixed-width daily transaction line:
// zero-padded code, space-padded holder name, zero-padded account number,
// formatted amount and the two-character misc field.
func FormatTransaction(t domain.Transaction) string {
	return fmt.Sprintf("%s %s %s %s %s",
		padLeft(string(t.Code), 2),
		padRight(truncate(t.HolderName, 20), 20),
		padLeft(t.AccountNumber, 5),
		FormatAmount(t.Amount),
		padRight(truncate(t.Misc, 2), 2),
	)
}

// ParseTransactionLine is the inverse of FormatTransaction.
func ParseTransactionLine(line string) (domain.Transaction, error) {
	if len(line) < txAmountEnd {
		return domain.Transaction{}, fmt.Errorf("%w: transaction line is %d characters, want at least %d",
			domain.ErrMalformedRecord, len(line), txAmountEnd)
	}

	amount, err := parseAmountField(line[txAmountStart:txAmountEnd])
	if err != nil {
		return domain.Transaction{}, err
	}

	var misc string
	if len(line) > txMiscStart {
		end := min(len(line), txMiscEnd)
		misc = strings.TrimRight(line[txMiscStart:end], " ")
	}

	return domain.Transaction{
		Code:          domain.Code(line[txCodeStart:txCodeEnd]),
		HolderName:    strings.TrimRight(line[txNameStart:txNameEnd], " "),
		AccountNumber: line[txNumberStart:txNumberEnd],
		Amount:        amount,
		Misc:          misc,
	}, nil
}

// FormatAmount renders amount as DDDDD.CC. The fraction is derived by
// truncation, never rounding. Amounts of 100000.00 or more do not fit the
// five integer digits and are out of range for this file format.
func FormatAmount(amount decimal.Decimal) string {
	dollars := amount.IntPart()
	cents := amount.Sub(amount.Truncate(0)).Mul(hundred).IntPart()
	return fmt.Sprintf("%05d.%02d", dollars, cents)
}

// parseAmountField interprets a fixed-width amount field after stripping
// leading zeros. An all-zero field is a zero amount; anything else that is
// not an unsigned decimal fails as a malformed record.
func parseAmountField(field string) (decimal.Decimal, error) {
	stripped := strings.TrimLeft(field, "0")
	if stripped == "" {
		return decimal.Zero, nil
	}
	if stripped[0] == '.' {
		stripped = "0" + stripped
	}

	amount, err := decimal.NewFromString(stripped)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount field %q is not an unsigned decimal",
			domain.ErrMalformedRecord, field)
	}

	return amount, nil
}

func normalizeName(field string) string {
	return strings.ToLower(strings.Join(strings.Fields(field), " "))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}
