// Package errs holds the sentinel errors shared across layers.
//
// Callers wrap them with fmt.Errorf("%w: ...") to add context and match
// them with errors.Is.
package errs

import "errors"

var (
	// ErrNotFound means the requested symbol is not in the asset directory.
	ErrNotFound = errors.New("asset not found")
	// ErrTransport means the market data request could not complete
	// (network failure, non-2xx status, undecodable body).
	ErrTransport = errors.New("market data transport error")
	// ErrMalformedData means the response decoded but a record violates
	// the expected schema.
	ErrMalformedData = errors.New("malformed market data")
	// ErrInvalidRange means a user supplied date range is outside the
	// allowed bounds or not strictly increasing.
	ErrInvalidRange = errors.New("invalid date range")
)
