package model

import "errors"

var (
	// Lookup errors
	ErrNotFound = errors.New("record not found")

	// Storage rejected the write: foreign key, unique or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)
