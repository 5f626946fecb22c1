package models

import "errors"

// ErrInvalidArgument marks contract violations: blank names, zero dates,
// missing payers, empty beneficiary lists. Violations are reported to the
// immediate caller and are always recoverable.
var ErrInvalidArgument = errors.New("invalid argument")
