package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Screening related errors
var (
	ErrMissingFullName = errors.Wrap(BadParameterError, "fullName is required")

	// ErrWatchlistUnavailable is fatal to a screening: nothing is persisted.
	ErrWatchlistUnavailable = errors.New("watchlist repository unavailable")

	// ErrScreeningNotPersisted is fatal to a screening: the caller gets a
	// failure envelope and no screening record exists.
	ErrScreeningNotPersisted = errors.New("screening record could not be persisted")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
