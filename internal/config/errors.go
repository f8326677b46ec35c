package config

import "errors"

// Construction-time validation failures (spec.md §3, §6).
var (
	// ErrNoSeparators is returned when the separator list is empty.
	ErrNoSeparators = errors.New("separator list must not be empty")

	// ErrTooManySeparators is returned when more than MaxSeparators
	// patterns are supplied.
	ErrTooManySeparators = errors.New("too many separator patterns")

	// ErrSeparatorLength is returned when a separator pattern is
	// zero-length or longer than MaxPatternLen.
	ErrSeparatorLength = errors.New("separator pattern length out of range")

	// ErrEscapeLength is returned when the escape pattern is zero-length
	// or longer than MaxPatternLen.
	ErrEscapeLength = errors.New("escape pattern length out of range")

	// ErrMalformedEncoding is returned when Decode is given a
	// length-prefixed separator encoding that violates the bit-exact
	// layout of spec.md §6.
	ErrMalformedEncoding = errors.New("malformed separator encoding")
)
