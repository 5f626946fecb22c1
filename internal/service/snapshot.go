package service

import (
	"fmt"

	"github.com/JonaJoost/wg-abrechner/internal/ledger"
	"github.com/JonaJoost/wg-abrechner/internal/models"
	"github.com/JonaJoost/wg-abrechner/internal/storage"
)

// BuildSnapshot flattens the registries and the ledger into the persistence
// format. Members, users and transactions are referenced by name; the
// account balances captured are the accounts' own running totals.
func BuildSnapshot(members *MemberRegistry, users *UserRegistry, led *ledger.Ledger) *storage.Snapshot {
	snap := &storage.Snapshot{Version: storage.SnapshotVersion}

	for _, m := range members.All() {
		snap.Members = append(snap.Members, storage.MemberRecord{
			Name:    m.Name(),
			Balance: m.Account().Balance(),
		})
	}

	for _, u := range users.All() {
		rec := storage.UserRecord{
			Name:         u.Name(),
			Username:     u.Username(),
			PasswordHash: u.PasswordHash(),
			Admin:        u.Admin(),
		}
		if acc := u.Account(); acc != nil && acc.Owner() != nil {
			rec.LinkedMember = acc.Owner().Name()
		}
		snap.Users = append(snap.Users, rec)
	}

	for _, t := range led.Transactions() {
		rec := storage.TransactionRecord{
			Date:        t.Date(),
			Amount:      t.Amount(),
			Payer:       t.Payer().Name(),
			Description: t.Description(),
			Settled:     t.Settled(),
		}
		for _, b := range t.Beneficiaries() {
			rec.Beneficiaries = append(rec.Beneficiaries, b.Name())
		}
		snap.Transactions = append(snap.Transactions, rec)
	}

	return snap
}

// RestoreSnapshot rebuilds the registries and the ledger from a snapshot.
// Name references are resolved against the restored members; a dangling
// reference fails the whole restore, there are no partial results.
func RestoreSnapshot(snap *storage.Snapshot) (*MemberRegistry, *UserRegistry, *ledger.Ledger, error) {
	members := NewMemberRegistry()
	users := NewUserRegistry()
	led := ledger.New()
	if snap == nil {
		return members, users, led, nil
	}

	byName := make(map[string]*models.Member, len(snap.Members))
	for _, rec := range snap.Members {
		m, err := models.NewMember(rec.Name)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("restoring member %q: %w", rec.Name, err)
		}
		m.Account().UpdateBalance(rec.Balance)
		if err := members.Add(m); err != nil {
			return nil, nil, nil, fmt.Errorf("restoring member %q: %w", rec.Name, err)
		}
		byName[m.Name()] = m
	}

	for _, rec := range snap.Users {
		u, err := models.NewUser(rec.Name, rec.Username, rec.PasswordHash, rec.Admin)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("restoring user %q: %w", rec.Username, err)
		}
		if rec.LinkedMember != "" {
			m, ok := byName[rec.LinkedMember]
			if !ok {
				return nil, nil, nil, fmt.Errorf("user %q is linked to unknown member %q", rec.Username, rec.LinkedMember)
			}
			u.LinkAccount(m.Account())
		}
		if err := users.Add(u); err != nil {
			return nil, nil, nil, fmt.Errorf("restoring user %q: %w", rec.Username, err)
		}
	}

	for _, rec := range snap.Transactions {
		payer, ok := byName[rec.Payer]
		if !ok {
			return nil, nil, nil, fmt.Errorf("transaction %q names unknown payer %q", rec.Description, rec.Payer)
		}
		beneficiaries := make([]*models.Member, 0, len(rec.Beneficiaries))
		for _, name := range rec.Beneficiaries {
			b, ok := byName[name]
			if !ok {
				return nil, nil, nil, fmt.Errorf("transaction %q names unknown beneficiary %q", rec.Description, name)
			}
			beneficiaries = append(beneficiaries, b)
		}
		t, err := models.NewTransaction(rec.Date, rec.Amount, payer, beneficiaries, rec.Description)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("restoring transaction %q: %w", rec.Description, err)
		}
		t.SetSettled(rec.Settled)
		if err := led.AddTransaction(t); err != nil {
			return nil, nil, nil, fmt.Errorf("restoring transaction %q: %w", rec.Description, err)
		}
	}

	return members, users, led, nil
}
