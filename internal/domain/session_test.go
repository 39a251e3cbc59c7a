package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSession_LoginLogout(t *testing.T) {
	s := NewSession()

	if s.LoggedIn() {
		t.Fatal("new session reports logged in")
	}
	if err := s.Logout(); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("Logout() on logged-out session = %v, want ErrNotLoggedIn", err)
	}

	if err := s.Login("01ABC", ModeStandard, "jane doe"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if !s.LoggedIn() || s.Mode() != ModeStandard || s.CurrentUser() != "jane doe" {
		t.Fatalf("unexpected session state after login: %+v", s)
	}
	if s.ID() != "01ABC" {
		t.Errorf("ID() = %q, want %q", s.ID(), "01ABC")
	}

	if err := s.Login("01ABD", ModeAdmin, ""); !errors.Is(err, ErrAlreadyLoggedIn) {
		t.Fatalf("second Login() = %v, want ErrAlreadyLoggedIn", err)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if s.LoggedIn() || s.Mode() != "" || s.CurrentUser() != "" || s.ID() != "" {
		t.Fatalf("session state not cleared after logout: %+v", s)
	}
}

func TestSession_CountersResetOnLoginAndLogout(t *testing.T) {
	s := NewSession()

	if err := s.Login("a", ModeStandard, "jane doe"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	s.RecordUsage(CommandWithdrawal, decimal.RequireFromString("120.50"))
	s.RecordUsage(CommandTransfer, decimal.RequireFromString("10.00"))
	s.RecordUsage(CommandPayBill, decimal.RequireFromString("99.99"))

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	for _, kind := range []Command{CommandWithdrawal, CommandTransfer, CommandPayBill} {
		if !s.Usage(kind).IsZero() {
			t.Errorf("counter for %s not reset on logout: %s", kind, s.Usage(kind))
		}
	}

	if err := s.Login("b", ModeStandard, "jane doe"); err != nil {
		t.Fatalf("second Login() failed: %v", err)
	}
	if !s.Usage(CommandWithdrawal).IsZero() {
		t.Errorf("withdrawn counter not reset on login: %s", s.Usage(CommandWithdrawal))
	}
}

func TestSession_RecordUsageAccumulates(t *testing.T) {
	s := NewSession()
	if err := s.Login("a", ModeStandard, "jane doe"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	s.RecordUsage(CommandWithdrawal, decimal.RequireFromString("100.25"))
	s.RecordUsage(CommandWithdrawal, decimal.RequireFromString("0.75"))

	want := decimal.RequireFromString("101.00")
	if !s.Usage(CommandWithdrawal).Equal(want) {
		t.Errorf("withdrawn = %s, want %s", s.Usage(CommandWithdrawal), want)
	}

	// Kinds without a ceiling are ignored.
	s.RecordUsage(CommandDeposit, decimal.RequireFromString("10.00"))
	if !s.Usage(CommandDeposit).IsZero() {
		t.Errorf("deposit usage tracked, want ignored")
	}
}

func TestSession_CanExecute(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		command Command
		want    bool
	}{
		{name: "standard withdrawal", mode: ModeStandard, command: CommandWithdrawal, want: true},
		{name: "standard deposit", mode: ModeStandard, command: CommandDeposit, want: true},
		{name: "standard transfer", mode: ModeStandard, command: CommandTransfer, want: true},
		{name: "standard paybill", mode: ModeStandard, command: CommandPayBill, want: true},
		{name: "standard create denied", mode: ModeStandard, command: CommandCreate, want: false},
		{name: "standard delete denied", mode: ModeStandard, command: CommandDelete, want: false},
		{name: "standard disable denied", mode: ModeStandard, command: CommandDisable, want: false},
		{name: "standard changeplan denied", mode: ModeStandard, command: CommandChangePlan, want: false},
		{name: "admin create", mode: ModeAdmin, command: CommandCreate, want: true},
		{name: "admin delete", mode: ModeAdmin, command: CommandDelete, want: true},
		{name: "admin disable", mode: ModeAdmin, command: CommandDisable, want: true},
		{name: "admin changeplan", mode: ModeAdmin, command: CommandChangePlan, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			if err := s.Login("a", tt.mode, "jane doe"); err != nil {
				t.Fatalf("Login() failed: %v", err)
			}
			if got := s.CanExecute(tt.command); got != tt.want {
				t.Errorf("CanExecute(%s) in %s mode = %v, want %v", tt.command, tt.mode, got, tt.want)
			}
		})
	}
}

func TestSession_CanExecuteLoggedOut(t *testing.T) {
	s := NewSession()
	if s.CanExecute(CommandWithdrawal) {
		t.Error("logged-out session may execute commands")
	}
}
