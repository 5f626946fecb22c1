package models

import (
	"math"
	"testing"
)

func TestAccountLifecycle(t *testing.T) {
	m, err := NewMember("Jona")
	if err != nil {
		t.Fatalf("NewMember failed: %v", err)
	}

	acc := m.Account()
	if acc == nil {
		t.Fatal("a member must own an account from construction")
	}
	if acc.Owner() != m {
		t.Error("account owner must be the constructing member")
	}
	if acc.Balance() != 0 {
		t.Errorf("initial balance = %v, want 0", acc.Balance())
	}
}

func TestUpdateBalance(t *testing.T) {
	m, _ := NewMember("Jona")
	acc := m.Account()

	acc.UpdateBalance(50.0)
	if math.Abs(acc.Balance()-50.0) > 1e-9 {
		t.Errorf("balance after deposit = %v, want 50", acc.Balance())
	}

	acc.UpdateBalance(-20.0)
	if math.Abs(acc.Balance()-30.0) > 1e-9 {
		t.Errorf("balance after spending = %v, want 30", acc.Balance())
	}

	// No bounds: the balance may go negative.
	acc.UpdateBalance(-100.0)
	if math.Abs(acc.Balance()+70.0) > 1e-9 {
		t.Errorf("balance after overdraft = %v, want -70", acc.Balance())
	}
}

func TestAccountCompare(t *testing.T) {
	debtor, _ := NewMember("DeepInDebt")
	rich, _ := NewMember("Rich")
	even, _ := NewMember("Even")

	debtor.Account().UpdateBalance(-120.0)
	rich.Account().UpdateBalance(80.0)

	if debtor.Account().Compare(rich.Account()) >= 0 {
		t.Error("the account with more debt must sort first")
	}
	if rich.Account().Compare(debtor.Account()) <= 0 {
		t.Error("the richer account must sort last")
	}
	if even.Account().Compare(even.Account()) != 0 {
		t.Error("an account must compare equal to itself")
	}
}
