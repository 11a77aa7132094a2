package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/generation"
)

func TestTraitAgent_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		backend         generation.Backend
		expectedTraits  []domain.Trait
		expectedFailure string
	}{
		{
			name: "valid_reply",
			backend: fixedBackend(`{"traits":[
				{"name":"relationship_goal_readiness","score":0.9,"reason":"States a clear goal"},
				{"name":"openness_to_commitment","score":0.8,"reason":"Uses the word serious"}
			]}`),
			expectedTraits: []domain.Trait{
				{Name: "relationship_goal_readiness", Score: 0.9, Reason: "States a clear goal"},
				{Name: "openness_to_commitment", Score: 0.8, Reason: "Uses the word serious"},
			},
		},
		{
			name: "out_of_range_scores_clamped",
			backend: fixedBackend(`{"traits":[
				{"name":"a","score":1.7,"reason":"r"},
				{"name":"b","score":-2.0,"reason":"r"}
			]}`),
			expectedTraits: []domain.Trait{
				{Name: "a", Score: 1.0, Reason: "r"},
				{Name: "b", Score: -1.0, Reason: "r"},
			},
		},
		{
			name: "missing_name_and_reason_defaulted",
			backend: fixedBackend(`{"traits":[
				{"score":0.5},
				{"name":"b","score":0.2,"reason":"r"}
			]}`),
			expectedTraits: []domain.Trait{
				{Name: domain.UnknownTraitName, Score: 0.5, Reason: ""},
				{Name: "b", Score: 0.2, Reason: "r"},
			},
		},
		{
			name: "missing_score_defaults_to_neutral",
			backend: fixedBackend(`{"traits":[
				{"name":"a","reason":"r"}
			]}`),
			expectedTraits: []domain.Trait{
				{Name: "a", Score: 0.0, Reason: "r"},
			},
		},
		{
			name: "overlong_trait_list_truncated_to_first_five",
			backend: fixedBackend(`{"traits":[
				{"name":"t1","score":0.1,"reason":"r"},
				{"name":"t2","score":0.2,"reason":"r"},
				{"name":"t3","score":0.3,"reason":"r"},
				{"name":"t4","score":0.4,"reason":"r"},
				{"name":"t5","score":0.5,"reason":"r"},
				{"name":"t6","score":0.6,"reason":"r"}
			]}`),
			expectedTraits: []domain.Trait{
				{Name: "t1", Score: 0.1, Reason: "r"},
				{Name: "t2", Score: 0.2, Reason: "r"},
				{Name: "t3", Score: 0.3, Reason: "r"},
				{Name: "t4", Score: 0.4, Reason: "r"},
				{Name: "t5", Score: 0.5, Reason: "r"},
			},
		},
		{
			name:            "unparseable_reply",
			backend:         fixedBackend("not JSON"),
			expectedFailure: "TraitAgent error",
		},
		{
			name:            "backend_failure",
			backend:         failingBackend(),
			expectedFailure: "TraitAgent error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			agent := NewTraitAgent(tc.backend, discardLogger())
			payload, err := agent.Run(context.Background(), testInput())

			if tc.expectedFailure != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedFailure)
				return
			}

			require.NoError(t, err)
			traits, ok := payload.([]domain.Trait)
			require.True(t, ok, "payload should be a []domain.Trait")
			assert.Equal(t, tc.expectedTraits, traits)
		})
	}
}

func TestTraitAgent_RoleAndName(t *testing.T) {
	t.Parallel()

	agent := NewTraitAgent(fixedBackend("{}"), discardLogger())
	assert.Equal(t, "TraitAgent", agent.Name())
	assert.Equal(t, RoleTraits, agent.Role())
}
