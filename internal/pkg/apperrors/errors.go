package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Request errors
	ErrMalformedInput = errors.New("malformed input")
	ErrMissingID      = errors.New("record id is required for update")

	// Storage errors
	ErrNoGeneratedID = errors.New("storage returned no generated identity")
)

// Semester errors
var (
	ErrSemesterTimeOrder = errors.New("semester end time cannot be before semester begin time")
)

// NewMalformedInputError wraps the decoding failure so the boundary can answer with the fixed diagnostic.
func NewMalformedInputError(cause error) error {
	return &CustomError{
		Err:     ErrMalformedInput,
		Message: "malformed input: " + cause.Error(),
		Cause:   cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
