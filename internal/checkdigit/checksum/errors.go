package checksum

import "errors"

var (
	// ErrInvalidInput is returned for negative numbers and text with non-digit characters
	ErrInvalidInput = errors.New("invalid input")
	// ErrTooShort is returned when a composite number cannot hold a base and its check digits
	ErrTooShort = errors.New("composite number too short")
	// ErrOverflow is returned when a digit segment does not fit into int64
	ErrOverflow = errors.New("number overflows int64")
	// ErrUnknownAlgorithm is returned by Lookup for unsupported algorithm names
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
