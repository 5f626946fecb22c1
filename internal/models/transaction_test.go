package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testMember(t *testing.T, name string) *Member {
	t.Helper()
	m, err := NewMember(name)
	if err != nil {
		t.Fatalf("NewMember(%q) failed: %v", name, err)
	}
	return m
}

func TestNewTransactionValidation(t *testing.T) {
	jona := testMember(t, "Jona")
	katha := testMember(t, "Katha")
	date := time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		date          time.Time
		payer         *Member
		beneficiaries []*Member
		wantErr       bool
	}{
		{name: "valid", date: date, payer: jona, beneficiaries: []*Member{jona, katha}},
		{name: "zero date", date: time.Time{}, payer: jona, beneficiaries: []*Member{katha}, wantErr: true},
		{name: "nil payer", date: date, payer: nil, beneficiaries: []*Member{katha}, wantErr: true},
		{name: "nil beneficiaries", date: date, payer: jona, beneficiaries: nil, wantErr: true},
		{name: "empty beneficiaries", date: date, payer: jona, beneficiaries: []*Member{}, wantErr: true},
		{name: "nil entry in beneficiaries", date: date, payer: jona, beneficiaries: []*Member{jona, nil}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(tt.date, 10.0, tt.payer, tt.beneficiaries, "test")
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

// The amount is not checked at construction: zero and negative amounts
// build fine and only fail at ledger insertion.
func TestNewTransactionAmountUnchecked(t *testing.T) {
	jona := testMember(t, "Jona")
	date := time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC)

	for _, amount := range []float64{0.0, -5.0} {
		tx, err := NewTransaction(date, amount, jona, []*Member{jona}, "unchecked")
		if err != nil {
			t.Errorf("NewTransaction(amount=%v) error = %v, want nil", amount, err)
			continue
		}
		if tx.Amount() != amount {
			t.Errorf("Amount() = %v, want %v", tx.Amount(), amount)
		}
	}
}

func TestTransactionBeneficiariesAreCopied(t *testing.T) {
	jona := testMember(t, "Jona")
	katha := testMember(t, "Katha")
	date := time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC)

	input := []*Member{jona, katha}
	tx, err := NewTransaction(date, 10.0, jona, input, "copied")
	if err != nil {
		t.Fatalf("NewTransaction failed: %v", err)
	}

	input[0] = nil
	got := tx.Beneficiaries()
	if got[0] != jona {
		t.Error("mutating the caller's slice must not change the transaction")
	}

	got[1] = nil
	if tx.Beneficiaries()[1] != katha {
		t.Error("mutating a returned slice must not change the transaction")
	}
}

func TestTransactionCompareByDateOnly(t *testing.T) {
	jona := testMember(t, "Jona")
	early := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.July, 9, 0, 0, 0, 0, time.UTC)

	a, _ := NewTransaction(early, 999.0, jona, []*Member{jona}, "expensive but early")
	b, _ := NewTransaction(late, 1.0, jona, []*Member{jona}, "cheap but late")
	c, _ := NewTransaction(early, 1.0, jona, []*Member{jona}, "same day")

	if a.Compare(b) >= 0 {
		t.Error("earlier transaction must sort first regardless of amount")
	}
	if b.Compare(a) <= 0 {
		t.Error("later transaction must sort last regardless of amount")
	}
	if a.Compare(c) != 0 {
		t.Error("same-day transactions must compare equal")
	}
}

func TestTransactionSettledFlag(t *testing.T) {
	jona := testMember(t, "Jona")
	date := time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC)

	tx, _ := NewTransaction(date, 10.0, jona, []*Member{jona}, "flag")
	if tx.Settled() {
		t.Error("a new transaction must start unsettled")
	}
	tx.SetSettled(true)
	if !tx.Settled() {
		t.Error("SetSettled(true) must stick")
	}
}

func TestTransactionString(t *testing.T) {
	tom := testMember(t, "Tom")
	date := time.Date(2024, time.July, 8, 0, 0, 0, 0, time.UTC)

	tx, _ := NewTransaction(date, 30.0, tom, []*Member{tom}, "groceries")
	s := tx.String()
	for _, want := range []string{"2024-07-08", "groceries", "30.00", "Tom"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
