package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberdate/onboarding-api/internal/analysis"
	"github.com/emberdate/onboarding-api/internal/domain"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "empty_user_id",
			err:      domain.ErrEmptyUserID,
			expected: http.StatusBadRequest,
		},
		{
			name:     "empty_answer",
			err:      domain.ErrEmptyAnswer,
			expected: http.StatusBadRequest,
		},
		{
			name:     "aggregate_error",
			err:      &analysis.AggregateError{Failures: []string{"TraitAgent error: x"}},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "incomplete_result",
			err:      fmt.Errorf("%w: no task supplied the insight payload", analysis.ErrIncompleteResult),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unknown_error",
			err:      errors.New("something else"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	aggErr := &analysis.AggregateError{
		Failures: []string{"InsightAgent error: api_key=secret123456789 rejected"},
	}

	msg := GetSafeErrorMessage(aggErr)
	assert.Equal(t, "Analysis failed", msg)
	assert.NotContains(t, msg, "secret123456789")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("raw internals")))
}
