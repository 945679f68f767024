package validator

import "errors"

// Hard failures. Every other check degrades to false instead of returning an error.
var (
	// ErrEmptyInput is returned when a required string argument is empty.
	ErrEmptyInput = errors.New("validator: empty input")

	// ErrInvalidDate is returned when a date argument cannot be parsed.
	ErrInvalidDate = errors.New("validator: invalid date")
)
