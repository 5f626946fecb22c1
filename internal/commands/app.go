package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/JonaJoost/wg-abrechner/internal/config"
	"github.com/JonaJoost/wg-abrechner/internal/ledger"
	"github.com/JonaJoost/wg-abrechner/internal/models"
	"github.com/JonaJoost/wg-abrechner/internal/service"
	"github.com/JonaJoost/wg-abrechner/internal/storage"
	"github.com/JonaJoost/wg-abrechner/internal/storage/sqlite"
)

// app bundles the household state a command works on: the configuration,
// the open store and the registries restored from the latest snapshot.
type app struct {
	cfg     *config.Config
	store   storage.Store
	members *service.MemberRegistry
	users   *service.UserRegistry
	ledger  *ledger.Ledger
	rules   *models.RuleSet
}

// openApp loads the configuration, opens the snapshot store and restores
// the household state. A missing config file falls back to the defaults,
// and a store without a snapshot yields an empty household. The bootstrap
// admin from the config is registered unless the username is taken.
func openApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config not found, using defaults", "path", configPath)
		cfg = config.Default("WG")
	} else if err != nil {
		return nil, err
	}

	if env := os.Getenv("WG_ABRECHNER_DB"); env != "" {
		cfg.Storage.DatabasePath = env
	}

	store, err := sqlite.New(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	snap, err := store.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		snap = nil
	} else if err != nil {
		store.Close()
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	members, users, led, err := service.RestoreSnapshot(snap)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("restoring snapshot: %w", err)
	}

	if cfg.Bootstrap.AdminUsername != "" {
		admin, err := models.NewUser(cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPasswordHash, true)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("bootstrap admin: %w", err)
		}
		if users.AddIfAbsent(admin) {
			slog.Info("bootstrap admin registered", "username", admin.Username())
		}
	}

	rules := models.NewRuleSet()
	if cfg.Rules.MaxDebt > 0 {
		rules.SetMaxDebt(cfg.Rules.MaxDebt)
	}
	if cfg.Rules.MaxLendDays > 0 {
		rules.SetMaxLendDays(cfg.Rules.MaxLendDays)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		members: members,
		users:   users,
		ledger:  led,
		rules:   rules,
	}, nil
}

// save persists the current state as a full snapshot.
func (a *app) save(ctx context.Context) error {
	snap := service.BuildSnapshot(a.members, a.users, a.ledger)
	if err := a.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("closing store", "error", err)
	}
}
