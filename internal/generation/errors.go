package generation

import "errors"

// Common errors returned across the generation boundary.
var (
	// ErrBackendUnavailable is returned when the external service could not
	// be reached or returned a transport-level failure.
	ErrBackendUnavailable = errors.New("text-generation backend unavailable")

	// ErrInvalidReply is returned when the backend responded but its payload
	// cannot be interpreted into the expected structured shape.
	ErrInvalidReply = errors.New("invalid reply from language model")

	// ErrContentBlocked is returned when the backend blocks the reply due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the backend configuration is invalid.
	ErrInvalidConfig = errors.New("invalid backend configuration")
)
