package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Lookup errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrClientNotFound   = errors.New("client not found")

	// Access errors
	ErrNotBookingOwner = errors.New("booking belongs to another client")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
