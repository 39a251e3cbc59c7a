package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/domain"
)

// AccountStore defines the account state the transaction engine operates on.
type AccountStore interface {
	FindByNumber(number string) (*domain.Account, bool)
	FindByName(name string) (*domain.Account, bool)
	Debit(account *domain.Account, amount decimal.Decimal)
	Credit(account *domain.Account, amount decimal.Decimal)
	Disable(number string)
	Delete(number string)
	ChangePlanToNonStudent(number string)
	NextNumber() string
}

// TransactionRecorder receives exactly one record per successful operation.
type TransactionRecorder interface {
	Append(t domain.Transaction)
}

// IDGenerator generates unique session IDs.
type IDGenerator interface {
	Generate() string
}
