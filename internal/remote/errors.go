package remote

import "errors"

var (
	// ErrUnauthorized indicates the session token was rejected or has
	// expired. The session layer owns user-facing messaging for this case.
	ErrUnauthorized = errors.New("order service rejected credentials")

	// ErrUnavailable indicates the order service could not be reached.
	ErrUnavailable = errors.New("order service unavailable")
)
