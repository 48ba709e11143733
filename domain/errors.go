package domain

import "errors"

var (
	// ErrInvalidFilter indicates a filter mode/value combination that cannot be queried.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrEmptyQuote indicates a quote without any text.
	ErrEmptyQuote = errors.New("quote cannot be empty")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
