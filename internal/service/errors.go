package service

import "errors"

// Domain errors. The middleware error translator maps these onto the HTTP
// statuses and messages of the public API; the distinction between a caller
// that cannot be resolved and a caller that is not the owner is kept here
// even though both surface as 401.
var (
	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenMissing is returned when a caller identity is required but
	// absent or does not resolve to an existing user.
	ErrTokenMissing = errors.New("token missing or invalid")

	// ErrPermissionDenied is returned when an authenticated caller is not
	// the owner of the recipe being mutated.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken is returned for a bearer token that fails
	// verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for a bearer token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrMalformedID is returned when a caller-supplied identifier cannot
	// reference any entity.
	ErrMalformedID = errors.New("malformatted id")
)

// ValidationError reports an entity that fails schema constraints, such as a
// missing required field or a duplicate unique field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
