package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrConceptNotFound = errors.New("concept not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrImmutableState     = errors.New("booking can no longer be edited")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrNotAuthorized      = errors.New("not authorized for this booking")
)

var (
	ErrConfirmationRequired = fmt.Errorf("%w: explicit confirmation required", ErrPreconditionFailed)
	ErrConceptLocked        = fmt.Errorf("%w: concept is referenced by a published booking", ErrImmutableState)
)

var (
	ErrPersistence     = errors.New("persistence error")
	ErrStaleBooking    = fmt.Errorf("%w: booking changed concurrently", ErrPersistence)
	ErrListingDeferred = errors.New("booking published, listing creation deferred")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrSameParty     = fmt.Errorf("%w: sender and receiver must differ", ErrValidation)
)

// IsRetryable reports whether err is a store failure that may succeed on a
// second attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPersistence)
}
