package domain

import "errors"

var (
	// Codec errors
	ErrMalformedRecord = errors.New("malformed record")

	// Validation errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountDisabled   = errors.New("account is disabled")
	ErrNotOwner          = errors.New("account does not belong to the current user")
	ErrAmountRequired    = errors.New("amount must be provided")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLimitExceeded     = errors.New("session limit exceeded")
	ErrAlreadyNonStudent = errors.New("account is already on the non-student plan")
	ErrUnknownCompany    = errors.New("unknown bill payment company")

	// Session errors
	ErrAlreadyLoggedIn = errors.New("a session is already active")
	ErrNotLoggedIn     = errors.New("no active session")
	ErrNotAuthorized   = errors.New("command not allowed in this session mode")

	// Persistence errors
	ErrPersistence = errors.New("persistence failure")
)
