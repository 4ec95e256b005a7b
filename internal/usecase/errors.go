package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrProviderNotFound    = errors.New("provider resource not found")
	ErrProviderRateLimited = errors.New("provider rate limited")
	ErrProviderFailure     = errors.New("provider request failed")
)

