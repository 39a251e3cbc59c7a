package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/domain"
)

// sessionCeilings are the per-session cumulative maxima for standard sessions.
// Admin sessions bypass them entirely. Counters reset only at login and
// logout, never per call.
var sessionCeilings = map[domain.Command]decimal.Decimal{
	domain.CommandWithdrawal: decimal.RequireFromString("500.00"),
	domain.CommandTransfer:   decimal.RequireFromString("1000.00"),
	domain.CommandPayBill:    decimal.RequireFromString("2000.00"),
}
