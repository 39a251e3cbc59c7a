package domain

import "github.com/shopspring/decimal"

// Mode is a session's access level.
type Mode string

const (
	// ModeAdmin bypasses ownership checks and per-session ceilings, and may
	// run the account lifecycle commands.
	ModeAdmin Mode = "admin"

	// ModeStandard is scoped to a single account holder and subject to
	// per-session ceilings.
	ModeStandard Mode = "standard"
)

// IsValid reports whether m is a known session mode.
func (m Mode) IsValid() bool {
	return m == ModeAdmin || m == ModeStandard
}

// Command is an operation a caller may request during a session.
type Command string

const (
	CommandLogin      Command = "login"
	CommandLogout     Command = "logout"
	CommandWithdrawal Command = "withdrawal"
	CommandTransfer   Command = "transfer"
	CommandPayBill    Command = "paybill"
	CommandDeposit    Command = "deposit"
	CommandCreate     Command = "create"
	CommandDelete     Command = "delete"
	CommandDisable    Command = "disable"
	CommandChangePlan Command = "changeplan"
)

// commandsByMode is the static allow-list for each session mode. Standard
// sessions lack the account lifecycle commands.
var commandsByMode = map[Mode]map[Command]bool{
	ModeAdmin: {
		CommandLogin: true, CommandLogout: true,
		CommandWithdrawal: true, CommandTransfer: true,
		CommandPayBill: true, CommandDeposit: true,
		CommandCreate: true, CommandDelete: true,
		CommandDisable: true, CommandChangePlan: true,
	},
	ModeStandard: {
		CommandLogin: true, CommandLogout: true,
		CommandWithdrawal: true, CommandTransfer: true,
		CommandPayBill: true, CommandDeposit: true,
	},
}

// Session tracks the login state of the single active user together with the
// cumulative per-kind spending used to enforce per-session ceilings.
type Session struct {
	id          string
	loggedIn    bool
	mode        Mode
	currentUser string

	withdrawn   decimal.Decimal
	transferred decimal.Decimal
	paid        decimal.Decimal
}

// NewSession returns a logged-out session with zeroed counters.
func NewSession() *Session {
	s := &Session{}
	s.resetCounters()
	return s
}

// Login moves the session to logged-in and zeroes the cumulative counters.
// user carries the holder name and is meaningful only in standard mode.
func (s *Session) Login(id string, mode Mode, user string) error {
	if s.loggedIn {
		return ErrAlreadyLoggedIn
	}

	s.id = id
	s.mode = mode
	s.currentUser = user
	s.loggedIn = true
	s.resetCounters()

	return nil
}

// Logout returns the session to logged-out and zeroes the counters.
func (s *Session) Logout() error {
	if !s.loggedIn {
		return ErrNotLoggedIn
	}

	s.id = ""
	s.mode = ""
	s.currentUser = ""
	s.loggedIn = false
	s.resetCounters()

	return nil
}

// ID returns the identifier assigned at login, empty when logged out.
func (s *Session) ID() string {
	return s.id
}

// LoggedIn reports whether a session is active.
func (s *Session) LoggedIn() bool {
	return s.loggedIn
}

// Mode returns the current session mode, empty when logged out.
func (s *Session) Mode() Mode {
	return s.mode
}

// CurrentUser returns the logged-in holder name. Empty for admin sessions and
// when logged out.
func (s *Session) CurrentUser() string {
	return s.currentUser
}

// IsAdmin reports whether the current session mode is admin.
func (s *Session) IsAdmin() bool {
	return s.loggedIn && s.mode == ModeAdmin
}

// CanExecute reports whether command is allowed in the current session mode.
func (s *Session) CanExecute(command Command) bool {
	if !s.loggedIn {
		return false
	}
	return commandsByMode[s.mode][command]
}

// RecordUsage accumulates amount into the counter for kind. Kinds without a
// per-session ceiling are ignored.
func (s *Session) RecordUsage(kind Command, amount decimal.Decimal) {
	switch kind {
	case CommandWithdrawal:
		s.withdrawn = s.withdrawn.Add(amount)
	case CommandTransfer:
		s.transferred = s.transferred.Add(amount)
	case CommandPayBill:
		s.paid = s.paid.Add(amount)
	}
}

// Usage returns the cumulative amount spent for kind during this session.
// Kinds without a ceiling report zero.
func (s *Session) Usage(kind Command) decimal.Decimal {
	switch kind {
	case CommandWithdrawal:
		return s.withdrawn
	case CommandTransfer:
		return s.transferred
	case CommandPayBill:
		return s.paid
	default:
		return decimal.Zero
	}
}

func (s *Session) resetCounters() {
	s.withdrawn = decimal.Zero
	s.transferred = decimal.Zero
	s.paid = decimal.Zero
}
