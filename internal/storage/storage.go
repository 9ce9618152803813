package storage

import "errors"

// Business-rule failures surfaced to the HTTP layer. They are final for the
// request that triggered them; retrying without changing the input will fail
// the same way.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	ErrEmailTaken        = errors.New("email already in use")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrSelfBooking       = errors.New("owner cannot book their own item")
	ErrInvalidInterval   = errors.New("booking end must be after start")
	ErrIntervalConflict  = errors.New("item is already booked for these dates")
	ErrAlreadyDecided    = errors.New("booking has already been decided")
	ErrNotItemOwner      = errors.New("user does not own the item")
	ErrNotAuthorized     = errors.New("user has no access to the booking")
	ErrCommentNotAllowed = errors.New("user has not finished a booking of the item")
	ErrUserHasBookings   = errors.New("user is referenced by booking history")
)

// ErrTxConflict reports a serialization failure of a concurrent
// check-then-write transaction. Unlike the errors above it is transient:
// the caller may safely retry the whole operation.
var ErrTxConflict = errors.New("transaction serialization conflict")
