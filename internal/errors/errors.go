package errors

import (
	"errors"
	"fmt"
)

// Common error values for the frontend
var (
	// Session errors
	ErrUnauthorized = errors.New("unauthorized")

	// Catalog errors
	ErrNoChanges       = errors.New("no changes were made")
	ErrProductNotFound = errors.New("product not found")

	// Modal errors
	ErrModalOpen = errors.New("another modal is already open")

	// General errors
	ErrNotFound = errors.New("not found")
)

// RequestFailedError is returned by the request gateway for any non-2xx
// response other than 401. Message names the failed operation in the form it
// is surfaced to the user.
type RequestFailedError struct {
	Message string
	Status  int
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// NetworkError wraps a transport-level failure (no HTTP response at all).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError is a local, pre-request rejection of user input. It never
// reaches the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
