package api

import "errors"

var (
	// ErrUnavailable means the backend could not be reached or answered with
	// a non-success status.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the credential exchange was rejected or a bearer
	// call was refused.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformed means the response body did not carry the expected fields.
	ErrMalformed = errors.New("malformed response")
)
