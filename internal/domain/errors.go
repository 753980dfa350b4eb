// internal/domain/errors.go
package domain

import "errors"

// Error kinds shared by every service. Services wrap these with
// fmt.Errorf("...: %w", Err*) and handlers translate them to HTTP
// statuses; nothing is retried automatically.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the write collides with existing state,
	// e.g. a duplicate email or wishlist entry.
	ErrConflict = errors.New("conflict")

	// ErrForbidden indicates the caller's role does not permit the action.
	ErrForbidden = errors.New("forbidden")

	// ErrBadRequest indicates invalid input, e.g. a malformed identifier
	// or an empty-cart checkout.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized indicates missing or failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
)
