package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")

	// ErrCorruptPlan marks a stored plan payload that no longer parses as
	// JSON. It indicates data corruption and is never treated as an empty
	// document.
	ErrCorruptPlan = errors.New("corrupt plan payload")
)
