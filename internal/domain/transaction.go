package domain

import "github.com/shopspring/decimal"

// Code identifies the type of a recorded transaction in the daily file.
type Code string

const (
	CodeEndOfSession Code = "00"
	CodeWithdrawal   Code = "01"
	CodeTransfer     Code = "02"
	CodePayBill      Code = "03"
	CodeDeposit      Code = "04"
	CodeCreate       Code = "05"
	CodeDelete       Code = "06"
	CodeDisable      Code = "07"
	CodeChangePlan   Code = "08"
)

// Approved bill payment companies.
var validCompanies = map[string]bool{
	"EC": true,
	"CQ": true,
	"FI": true,
}

// ValidCompany reports whether code is an approved bill payment company.
func ValidCompany(code string) bool {
	return validCompanies[code]
}

// Transaction is a committed, immutable record destined for the daily
// transaction file. Debits are stored as positive magnitudes.
type Transaction struct {
	Code          Code
	HolderName    string
	AccountNumber string
	Amount        decimal.Decimal
	Misc          string
}

// EndOfSession returns the synthetic terminator record written after the last
// transaction of every session file.
func EndOfSession() Transaction {
	return Transaction{
		Code:          CodeEndOfSession,
		AccountNumber: "00000",
		Amount:        decimal.Zero,
	}
}
