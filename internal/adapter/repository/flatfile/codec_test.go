package flatfile

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bankoffice/bankoffice/internal/domain"
)

func TestParseAccountLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantNumber  string
		wantName    string
		wantBalance string
		wantStatus  domain.Status
		wantErr     error
	}{
		{
			name:        "active account with spaced name",
			line:        "00042 jane   doe             A0150.40",
			wantNumber:  "00042",
			wantName:    "jane doe",
			wantBalance: "150.40",
			wantStatus:  domain.StatusActive,
		},
		{
			name:        "disabled account",
			line:        "00099 bob smith              D0001.00",
			wantNumber:  "00099",
			wantName:    "bob smith",
			wantBalance: "1.00",
			wantStatus:  domain.StatusDisabled,
		},
		{
			name:        "mixed case name is lowered",
			line:        "00007 Alice Cooper           A0099.99",
			wantNumber:  "00007",
			wantName:    "alice cooper",
			wantBalance: "99.99",
			wantStatus:  domain.StatusActive,
		},
		{
			name:        "all-zero balance field",
			line:        "00003 pat zero               A0000000",
			wantNumber:  "00003",
			wantName:    "pat zero",
			wantBalance: "0",
			wantStatus:  domain.StatusActive,
		},
		{
			name:    "line too short",
			line:    "00001 too short",
			wantErr: domain.ErrMalformedRecord,
		},
		{
			name:    "garbage balance field",
			line:    "00001 jane doe               Axx.yyzz",
			wantErr: domain.ErrMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := ParseAccountLine(tt.line)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAccountLine() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAccountLine() failed: %v", err)
			}

			if account.Number != tt.wantNumber {
				t.Errorf("Number = %q, want %q", account.Number, tt.wantNumber)
			}
			if account.HolderName != tt.wantName {
				t.Errorf("HolderName = %q, want %q", account.HolderName, tt.wantName)
			}
			if want := decimal.RequireFromString(tt.wantBalance); !account.Balance.Equal(want) {
				t.Errorf("Balance = %s, want %s", account.Balance, want)
			}
			if account.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", account.Status, tt.wantStatus)
			}
			if account.Plan != domain.PlanStudent {
				t.Errorf("Plan = %q, want %q", account.Plan, domain.PlanStudent)
			}
		})
	}
}

func TestFormatTransaction(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
		want string
	}{
		{
			name: "withdrawal",
			txn: domain.Transaction{
				Code:          domain.CodeWithdrawal,
				HolderName:    "jane doe",
				AccountNumber: "00042",
				Amount:        decimal.RequireFromString("500.00"),
			},
			want: "01 jane doe             00042 00500.00   ",
		},
		{
			name: "paybill carries the company code",
			txn: domain.Transaction{
				Code:          domain.CodePayBill,
				HolderName:    "bob smith",
				AccountNumber: "00007",
				Amount:        decimal.RequireFromString("19.99"),
				Misc:          "EC",
			},
			want: "03 bob smith            00007 00019.99 EC",
		},
		{
			name: "terminator",
			txn:  domain.EndOfSession(),
			want: "00                      00000 00000.00   ",
		},
		{
			name: "overlong name and misc are truncated",
			txn: domain.Transaction{
				Code:          domain.CodeCreate,
				HolderName:    "maximiliana vandermeer",
				AccountNumber: "00100",
				Amount:        decimal.RequireFromString("0.01"),
				Misc:          "ABCD",
			},
			want: "05 maximiliana vanderme 00100 00000.01 AB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTransaction(tt.txn); got != tt.want {
				t.Errorf("FormatTransaction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "zero", amount: "0", want: "00000.00"},
		{name: "cents only", amount: "0.05", want: "00000.05"},
		{name: "typical", amount: "150.40", want: "00150.40"},
		{name: "maximum representable", amount: "99999.99", want: "99999.99"},
		{name: "sub-cent fraction is truncated not rounded", amount: "150.409", want: "00150.40"},
		{name: "near-dollar fraction is truncated", amount: "19.999", want: "00019.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(decimal.RequireFromString(tt.amount)); got != tt.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	transactions := []domain.Transaction{
		{
			Code:          domain.CodeWithdrawal,
			HolderName:    "jane doe",
			AccountNumber: "00042",
			Amount:        decimal.RequireFromString("123.45"),
		},
		{
			Code:          domain.CodePayBill,
			HolderName:    "bob smith",
			AccountNumber: "00007",
			Amount:        decimal.RequireFromString("2000.00"),
			Misc:          "FI",
		},
		domain.EndOfSession(),
	}

	for _, original := range transactions {
		parsed, err := ParseTransactionLine(FormatTransaction(original))
		if err != nil {
			t.Fatalf("ParseTransactionLine() failed: %v", err)
		}

		if parsed.Code != original.Code {
			t.Errorf("Code = %q, want %q", parsed.Code, original.Code)
		}
		if parsed.HolderName != original.HolderName {
			t.Errorf("HolderName = %q, want %q", parsed.HolderName, original.HolderName)
		}
		if parsed.AccountNumber != original.AccountNumber {
			t.Errorf("AccountNumber = %q, want %q", parsed.AccountNumber, original.AccountNumber)
		}
		if !parsed.Amount.Equal(original.Amount) {
			t.Errorf("Amount = %s, want %s", parsed.Amount, original.Amount)
		}
		if parsed.Misc != original.Misc {
			t.Errorf("Misc = %q, want %q", parsed.Misc, original.Misc)
		}
	}
}

func TestParseTransactionLineTooShort(t *testing.T) {
	_, err := ParseTransactionLine("01 jane")
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("ParseTransactionLine() error = %v, want ErrMalformedRecord", err)
	}
}
