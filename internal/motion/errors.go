package motion

import "errors"

var (
	// ErrInvalidFrame is returned when a landmark frame is missing points
	// or finger flags. Recoverable: the caller skips the tick.
	ErrInvalidFrame = errors.New("invalid landmark frame")

	// ErrOutOfOrderAppend is returned when an append would violate the
	// history ordering invariants. It indicates a caller bug and should be
	// treated as fatal to the session.
	ErrOutOfOrderAppend = errors.New("out-of-order history append")

	// ErrEmptyHistory is returned when an export is attempted on a history
	// with zero descriptors.
	ErrEmptyHistory = errors.New("motion history is empty")

	// ErrMalformedRecord is returned when a session record cannot be
	// decoded or is structurally incomplete.
	ErrMalformedRecord = errors.New("malformed session record")
)
