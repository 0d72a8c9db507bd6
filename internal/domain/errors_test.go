package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("word", "required")
	assert.Equal(t, "validation: word: required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidationError_Accumulates(t *testing.T) {
	t.Parallel()

	var v ValidationError
	require.NoError(t, v.Err())

	v.Add("word", "required")
	v.Add("candidate", "required")

	err := v.Err()
	require.Error(t, err)
	assert.Equal(t, "validation: word: required; candidate: required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, v.Errors, 2)
}

func TestValidationError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("thesaurus: like: %w", NewValidationError("candidate", "required"))
	assert.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "candidate", ve.Errors[0].Field)
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrValidation, ErrNotInitialized, ErrUnavailable}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "sentinel %d matches %d", i, j)
			}
		}
	}
}
