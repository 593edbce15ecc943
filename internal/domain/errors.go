package domain

import "errors"

var (
	// ErrInvalidArgument marks malformed input from the gesture layer:
	// out-of-range indices, unknown parents, unknown modes.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	// ErrNestingTooDeep is returned when an item with children would end up at level 1
	ErrNestingTooDeep    = errors.New("nesting deeper than two levels")
	ErrInvalidTransition = errors.New("invalid drag transition")
)
