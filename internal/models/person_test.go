package models

import (
	"errors"
	"testing"
)

func TestNewPersonIdentity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Jona", wantErr: false},
		{name: "empty name", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "tab and newline", input: "\t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPersonIdentity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPersonIdentity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if p.Name() != tt.input {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.input)
			}
		})
	}
}

func TestSetNameRevalidates(t *testing.T) {
	p, err := NewPersonIdentity("Jona")
	if err != nil {
		t.Fatalf("NewPersonIdentity failed: %v", err)
	}

	if err := p.SetName("  "); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetName(blank) error = %v, want ErrInvalidArgument", err)
	}
	if p.Name() != "Jona" {
		t.Errorf("rejected rename must not change the name, got %q", p.Name())
	}

	if err := p.SetName("Katha"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}
	if p.Name() != "Katha" {
		t.Errorf("Name() = %q, want Katha", p.Name())
	}
}

func TestPersonIdentityCompare(t *testing.T) {
	anna, _ := NewPersonIdentity("Anna")
	tom, _ := NewPersonIdentity("Tom")
	anna2, _ := NewPersonIdentity("Anna")

	if anna.Compare(tom) >= 0 {
		t.Error("Anna must sort before Tom")
	}
	if tom.Compare(anna) <= 0 {
		t.Error("Tom must sort after Anna")
	}
	if anna.Compare(anna2) != 0 {
		t.Error("equal names must compare equal")
	}
}
