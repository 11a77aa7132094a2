package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysisInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		userID      string
		question    string
		answer      string
		expectedErr error
	}{
		{
			name:     "valid_input",
			userID:   "user-123",
			question: "What are you looking for?",
			answer:   "A serious relationship.",
		},
		{
			name:        "empty_user_id",
			userID:      "",
			question:    "What are you looking for?",
			answer:      "A serious relationship.",
			expectedErr: ErrEmptyUserID,
		},
		{
			name:        "empty_question",
			userID:      "user-123",
			question:    "",
			answer:      "A serious relationship.",
			expectedErr: ErrEmptyQuestion,
		},
		{
			name:        "empty_answer",
			userID:      "user-123",
			question:    "What are you looking for?",
			answer:      "",
			expectedErr: ErrEmptyAnswer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input, err := NewAnalysisInput(tc.userID, tc.question, tc.answer)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.userID, input.UserID)
			assert.Equal(t, tc.question, input.Question)
			assert.Equal(t, tc.answer, input.Answer)
		})
	}
}

func TestClampScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		score    float64
		expected float64
	}{
		{name: "in_range_untouched", score: 0.5, expected: 0.5},
		{name: "upper_bound_untouched", score: 1.0, expected: 1.0},
		{name: "lower_bound_untouched", score: -1.0, expected: -1.0},
		{name: "above_range_clamped", score: 1.7, expected: 1.0},
		{name: "below_range_clamped", score: -2.0, expected: -1.0},
		{name: "zero_untouched", score: 0.0, expected: 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ClampScore(tc.score)
			assert.Equal(t, tc.expected, got)

			// Clamping an already-clamped value yields the same value.
			assert.Equal(t, got, ClampScore(got))
		})
	}
}
