package db

import "strings"

// IsCheckViolation reports whether the provided error references a failed
// CHECK constraint. When constraintName is provided, the helper looks for the
// constraint text in the error message. Both the sqlite and postgres drivers
// surface the constraint name in the message, so matching on text keeps the
// check driver-agnostic.
func IsCheckViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "CHECK constraint failed") &&
		!strings.Contains(msg, "check constraint") {
		return false
	}
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return true
}
