package recordstore

import "fmt"

// RecordStoreError is a custom error type for record store errors
type RecordStoreError string

// Error implements the error interface
func (e RecordStoreError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      RecordStoreError = "config cannot be nil"
	ErrMissingBaseURL RecordStoreError = "base URL cannot be empty"
	ErrNotNumeric     RecordStoreError = "value is not a number"
	ErrProbeMismatch  RecordStoreError = "connection probe read back a different value"
)

// StatusError is returned when the store answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}
