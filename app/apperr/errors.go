// Package apperr defines the error kinds the core services return.
// Handlers translate them to HTTP statuses; nothing below the handler
// layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor lacks permission for the action.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict means a uniqueness rule was violated, e.g. a second
	// award for the same student/achievement pair.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means a value is outside its declared constraints.
	ErrInvalidInput = errors.New("invalid input")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}
