package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchError_Error(t *testing.T) {
	cause := errors.New("disk full")
	err := &BatchError{Code: ErrCodeJournal, Message: "write records", RunToken: "run-1", Err: cause}

	assert.Equal(t, "JOURNAL_FAILED: write records (run=run-1): disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &BatchError{Code: ErrCodeInvalidMode, Message: "unknown mode x"}
	assert.Equal(t, "INVALID_MODE: unknown mode x", bare.Error())
}

func TestIsHelpers(t *testing.T) {
	conv := fmt.Errorf("wrapped: %w", &BatchError{Code: ErrCodeConversion})
	journal := &BatchError{Code: ErrCodeJournal}

	assert.True(t, IsConversionError(conv))
	assert.False(t, IsJournalError(conv))
	assert.True(t, IsJournalError(journal))
	assert.False(t, IsConversionError(journal))
	assert.False(t, IsConversionError(errors.New("plain")))
}
