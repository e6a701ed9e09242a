package errs

import "errors"

// Sentinel taxonomy shared by the usecase and handler layers
var (
	// Request errors
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptData        = errors.New("corrupt data")
	ErrWriteFailure       = errors.New("write failure")
)
