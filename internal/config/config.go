package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level wg-abrechner.yaml configuration.
type Config struct {
	Household HouseholdConfig `yaml:"household"`
	Storage   StorageConfig   `yaml:"storage"`
	Rules     RulesConfig     `yaml:"rules"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
}

// HouseholdConfig identifies the shared household.
type HouseholdConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig locates the snapshot database.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// RulesConfig tunes the advisory rules evaluated at login.
type RulesConfig struct {
	MaxDebt     float64 `yaml:"max_debt"`
	MaxLendDays int     `yaml:"max_lend_days"`
}

// BootstrapConfig describes the admin account created on first run.
// The password is stored as a SHA-256 hex digest, never in plain text.
type BootstrapConfig struct {
	AdminName         string `yaml:"admin_name"`
	AdminUsername     string `yaml:"admin_username"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

// Load reads a wg-abrechner.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new household.
func Default(householdName string) *Config {
	return &Config{
		Household: HouseholdConfig{
			Name: householdName,
		},
		Storage: StorageConfig{
			DatabasePath: filepath.Join("data", "wg-abrechner.db"),
		},
		Rules: RulesConfig{
			MaxDebt:     100.0,
			MaxLendDays: 30,
		},
		Bootstrap: BootstrapConfig{
			AdminName:     "Admin",
			AdminUsername: "admin",
			// SHA-256 of "admin"; change after first login.
			AdminPasswordHash: "8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918",
		},
	}
}
