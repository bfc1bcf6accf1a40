package engine

import (
	"errors"
	"fmt"
)

// BatchError represents a failure that aborted a batch run.
type BatchError struct {
	// Code identifies the error category.
	Code BatchErrorCode

	// Message is a human-readable description.
	Message string

	// RunToken identifies the affected run, when one was assigned.
	RunToken string

	// Input is the value being converted, for conversion failures.
	Input int64

	// Err is the underlying cause.
	Err error
}

// BatchErrorCode categorizes batch errors.
type BatchErrorCode string

const (
	// ErrCodeInvalidMode indicates an unknown conversion mode.
	ErrCodeInvalidMode BatchErrorCode = "INVALID_MODE"

	// ErrCodeConversion indicates the host failed in an unrecoverable way.
	ErrCodeConversion BatchErrorCode = "CONVERSION_FAILED"

	// ErrCodeJournal indicates the journal write failed.
	ErrCodeJournal BatchErrorCode = "JOURNAL_FAILED"
)

// Error implements the error interface.
func (e *BatchError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.RunToken != "" {
		msg += fmt.Sprintf(" (run=%s)", e.RunToken)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *BatchError) Unwrap() error {
	return e.Err
}

// IsConversionError returns true if a conversion aborted the run.
// Uses errors.As to handle wrapped errors.
func IsConversionError(err error) bool {
	var be *BatchError
	if errors.As(err, &be) {
		return be.Code == ErrCodeConversion
	}
	return false
}

// IsJournalError returns true if writing the journal failed.
func IsJournalError(err error) bool {
	var be *BatchError
	if errors.As(err, &be) {
		return be.Code == ErrCodeJournal
	}
	return false
}
