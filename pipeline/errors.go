package pipeline

import "errors"

var (
	// ErrUnknownCode is returned when a numeric value is not a member of the
	// enum it is converted to.
	ErrUnknownCode = errors.New("pipeline: unknown enum code")

	// ErrUnknownName is returned when a string names no member of an enum.
	ErrUnknownName = errors.New("pipeline: unknown enum name")
)
