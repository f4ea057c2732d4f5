package domain

import "errors"

// Typed error kinds surfaced by the analytics modules. None of these is fatal:
// callers map them to "cannot compute" responses and the UI degrades gracefully.
var (
	// ErrDataUnavailable means a fetch or cache read failed. The previous
	// in-memory store stays authoritative and the caller is told the data
	// may be stale.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInsufficientData means a computation had zero (or too few) in-range
	// points for a well-defined result.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrEmptySeries means a selected country has no points in the requested
	// range.
	ErrEmptySeries = errors.New("empty series")

	// ErrInsufficientCountries means fewer countries survived filtering than
	// the requested cluster count.
	ErrInsufficientCountries = errors.New("insufficient countries")

	// ErrInvalidRange means the caller supplied start > end, a non-positive
	// amount, or a base year with no data.
	ErrInvalidRange = errors.New("invalid range")
)
