package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JonaJoost/wg-abrechner/internal/auth"
	"github.com/JonaJoost/wg-abrechner/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string
	var adminUsername string
	var adminPassword string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new household",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, adminUsername, adminPassword)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "household name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&adminUsername, "admin-username", "admin", "username of the bootstrap admin")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "password of the bootstrap admin (default \"admin\")")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, adminUsername, adminPassword string) error {
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default(name)
	cfg.Storage.DatabasePath = filepath.Join(dir, "data", "wg-abrechner.db")
	cfg.Bootstrap.AdminUsername = adminUsername
	if adminPassword != "" {
		cfg.Bootstrap.AdminPasswordHash = auth.HashPassword(adminPassword)
	}

	path := filepath.Join(dir, "wg-abrechner.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized household %q at %s\n", name, dir)
	return nil
}
