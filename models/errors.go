package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the store and the services. Handlers map
// these onto HTTP statuses; nothing here is fatal to the process.
var (
	// ErrNotFound means a referenced id is absent from its table.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the operation is not valid for the record's
	// current lifecycle state, e.g. selling an already-sold item.
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict means the workbook changed between snapshot load and
	// write-back. Callers get one bounded retry of the whole cycle.
	ErrConflict = errors.New("conflict: workbook changed during update")

	// ErrStorageUnavailable means the workbook itself could not be read
	// or written. An empty or missing sheet is NOT this error.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError rejects bad input before any mutation happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
