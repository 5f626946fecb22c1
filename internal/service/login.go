package service

import (
	"fmt"
	"log/slog"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

// Login outcome messages. Wrong passwords and high debt are ordinary
// outcomes represented as data, never errors.
const (
	MsgLoginFailed     = "login failed: wrong password"
	MsgLoginSuccessful = "login successful"
)

// Credential is the minimal identity surface the login flow needs.
// models.User implements it.
type Credential interface {
	Name() string
	VerifyPassword(inputHash string) bool
}

// LoginManager verifies a credential and attaches the debt advisory from
// the rule set when the identity carries an account. It keeps no state
// between calls; retry policy belongs to the caller.
type LoginManager struct {
	rules  *models.RuleSet
	logger *slog.Logger
}

// NewLoginManager creates a login manager over the given rule set. A nil
// rule set falls back to the defaults; a nil logger falls back to
// slog.Default.
func NewLoginManager(rules *models.RuleSet, logger *slog.Logger) *LoginManager {
	if rules == nil {
		rules = models.NewRuleSet()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginManager{rules: rules, logger: logger}
}

// Login verifies inputHash against the credential and returns the outcome
// message. On success, identities exposing the AccountHolder capability
// with a linked account get a debt notice appended on a new line when the
// rule set produces one. A nil credential is a contract violation and the
// only error case.
func (lm *LoginManager) Login(cred Credential, inputHash string) (string, error) {
	if cred == nil {
		return "", fmt.Errorf("%w: credential must not be nil", models.ErrInvalidArgument)
	}

	if !cred.VerifyPassword(inputHash) {
		lm.logger.Warn("login failed", "name", cred.Name())
		return MsgLoginFailed, nil
	}

	if holder, ok := cred.(models.AccountHolder); ok && holder.Account() != nil {
		balance := holder.Account().Balance()
		if warning, breached := lm.rules.DebtWarning(holder.Name(), balance); breached {
			lm.logger.Info("login succeeded with debt notice", "name", cred.Name(), "balance", balance)
			return MsgLoginSuccessful + "\n" + warning, nil
		}
	}

	lm.logger.Info("login succeeded", "name", cred.Name())
	return MsgLoginSuccessful, nil
}
