package meson

import "errors"

var (
	// ErrValidation is returned when a well-formed candidate violates a
	// field invariant: time out of range, generator id not 4 bytes, negative
	// sequence or a byte slice of the wrong length.
	ErrValidation = errors.New("meson: invalid identifier")

	// ErrFormat is returned when text cannot be decoded into a candidate at
	// all.
	ErrFormat = errors.New("meson: malformed identifier text")

	// ErrInvalidArgument is returned when an operation receives a missing
	// operand.
	ErrInvalidArgument = errors.New("meson: invalid argument")
)
