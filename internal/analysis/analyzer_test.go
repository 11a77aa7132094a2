package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/generation"
)

// routingBackend answers each agent differently, keyed on the agent name
// embedded in the system instruction.
func routingBackend(insightReply, traitReply string, insightErr, traitErr error) generation.Backend {
	return generation.BackendFunc(func(ctx context.Context, systemInstruction, userContent string) (string, error) {
		if strings.Contains(systemInstruction, "InsightAgent") {
			return insightReply, insightErr
		}
		return traitReply, traitErr
	})
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	input := domain.AnalysisInput{
		UserID:   "u1",
		Question: "What are you looking for?",
		Answer:   "I want a serious relationship.",
	}

	t.Run("both_agents_succeed", func(t *testing.T) {
		t.Parallel()

		backend := routingBackend(
			`{"summary":"Wants commitment","keywords":["serious","relationship"]}`,
			`{"traits":[
				{"name":"relationship_goal_readiness","score":0.9,"reason":"States a clear goal"},
				{"name":"openness_to_commitment","score":0.8,"reason":"Uses the word serious"}
			]}`,
			nil, nil,
		)

		analyzer, err := NewAnalyzer(backend, discardLogger())
		require.NoError(t, err)

		result, err := analyzer.Analyze(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "u1", result.UserID)
		assert.Equal(t, domain.Insight{
			Summary:  "Wants commitment",
			Keywords: []string{"serious", "relationship"},
		}, result.Insight)
		assert.Equal(t, []domain.Trait{
			{Name: "relationship_goal_readiness", Score: 0.9, Reason: "States a clear goal"},
			{Name: "openness_to_commitment", Score: 0.8, Reason: "Uses the word serious"},
		}, result.Traits)
	})

	t.Run("backend_always_fails", func(t *testing.T) {
		t.Parallel()

		analyzer, err := NewAnalyzer(failingBackend(), discardLogger())
		require.NoError(t, err)

		result, err := analyzer.Analyze(context.Background(), input)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrAnalysisFailed)

		var aggErr *AggregateError
		require.ErrorAs(t, err, &aggErr)
		require.Len(t, aggErr.Failures, 2)
		assert.Contains(t, aggErr.Failures[0], "InsightAgent error")
		assert.Contains(t, aggErr.Failures[1], "TraitAgent error")
	})

	t.Run("valid_insight_discarded_when_traits_unparseable", func(t *testing.T) {
		t.Parallel()

		backend := routingBackend(
			`{"summary":"Wants commitment","keywords":["serious"]}`,
			"this is not structured data",
			nil, nil,
		)

		analyzer, err := NewAnalyzer(backend, discardLogger())
		require.NoError(t, err)

		result, err := analyzer.Analyze(context.Background(), input)
		assert.Nil(t, result)

		var aggErr *AggregateError
		require.ErrorAs(t, err, &aggErr)
		require.Len(t, aggErr.Failures, 1)
		assert.Contains(t, aggErr.Failures[0], "TraitAgent error")
	})
}

func TestNewAnalyzer_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewAnalyzer(nil, discardLogger())
	assert.Error(t, err)

	_, err = NewAnalyzer(failingBackend(), nil)
	assert.Error(t, err)
}

func TestAggregateError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &AggregateError{Failures: []string{"InsightAgent error: x", "TraitAgent error: y"}}
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Contains(t, err.Error(), "InsightAgent error: x")
	assert.Contains(t, err.Error(), "TraitAgent error: y")

	var target *AggregateError
	assert.True(t, errors.As(err, &target))
}
