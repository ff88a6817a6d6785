// Package common defines shared sentinel errors used across the store,
// storage and presentation layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Store-level errors.
	ErrDuplicateEmail        = errors.New("duplicate email")
	ErrJobNotFound           = errors.New("job not found")
	ErrAlreadyApplied        = errors.New("already applied")
	ErrPersistedStateCorrupt = errors.New("persisted state corrupt")
)
