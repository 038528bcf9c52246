package board

import "errors"

var (
	// ErrNotFound is returned when an action names an id the target store
	// does not hold and the operation cannot proceed without it.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when a create action reuses an existing id.
	ErrDuplicateID = errors.New("duplicate id")
)
