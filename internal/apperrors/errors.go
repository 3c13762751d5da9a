package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller is not allowed to see the requested data.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that no usable caller identity was supplied.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSourceUnavailable indicates that the transaction record source failed.
// It must never be confused with an empty result.
var ErrSourceUnavailable = errors.New("transaction source unavailable")
