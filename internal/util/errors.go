// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already taken")
)

// IsError reports whether err matches the given sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
