package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's credentials or token did not check out.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenExpired indicates a token whose expiry timestamp has passed.
// Kept distinct from ErrTokenInvalid so callers can tell an expired token
// from a malformed or forged one, even where both surface as a 401.
var ErrTokenExpired = errors.New("token has expired")

// ErrTokenInvalid indicates a token whose signature or structure does not validate.
var ErrTokenInvalid = errors.New("token is invalid")
