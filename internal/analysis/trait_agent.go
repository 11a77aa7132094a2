package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/generation"
)

// traitSystemPrompt directs the backend to score a small set of relevant
// traits and reply with JSON only.
const traitSystemPrompt = `You are a TraitAgent for a dating app's onboarding system.

Your job is to analyze a user's response and score 2-5 personality/dating traits.
Each trait should have:
- A snake_case name (e.g., relationship_goal_readiness, social_energy, openness_to_commitment)
- A numeric score from -1.0 to 1.0 where:
  - -1.0 = strongly negative/low
  - 0.0 = neutral/ambiguous
  - 1.0 = strongly positive/high
- A one-sentence reasoning explaining the score

Consider traits relevant to dating like:
- relationship_goal_readiness: How clear and ready are they for their stated goals?
- openness_to_commitment: How willing are they to commit?
- social_energy: Introvert (-1) to extrovert (1)
- emotional_availability: How emotionally open do they seem?
- self_awareness: How self-aware do they appear about their needs?

Pick the traits that are MOST RELEVANT to what the user said.

You MUST respond with valid JSON in this exact format:
{
  "traits": [
    {"name": "trait_name", "score": 0.8, "reason": "One sentence explanation"},
    {"name": "another_trait", "score": 0.5, "reason": "One sentence explanation"}
  ]
}

Only output the JSON, nothing else.`

const traitDirective = "Analyze this response and score relevant personality/dating traits."

// traitReply is the expected structured shape of the backend's reply.
// Score is a pointer so a missing score can default to neutral rather
// than failing the task.
type traitReply struct {
	Traits []traitSchema `json:"traits"`
}

type traitSchema struct {
	Name   string   `json:"name"`
	Score  *float64 `json:"score"`
	Reason string   `json:"reason"`
}

// TraitAgent produces scored personality/dating traits with one-sentence
// reasoning. It implements the Task interface with RoleTraits.
type TraitAgent struct {
	backend generation.Backend
	logger  *slog.Logger
}

// NewTraitAgent creates a TraitAgent backed by the given generation
// backend.
func NewTraitAgent(backend generation.Backend, logger *slog.Logger) *TraitAgent {
	return &TraitAgent{
		backend: backend,
		logger:  logger,
	}
}

// Name implements Task.
func (a *TraitAgent) Name() string { return "TraitAgent" }

// Role implements Task.
func (a *TraitAgent) Role() Role { return RoleTraits }

// Run invokes the backend once and parses its reply into a []domain.Trait.
// A missing name defaults to the unknown-trait sentinel, a missing reason
// to the empty string, and every score is clamped into range.
// Over-production is truncated, never padded.
func (a *TraitAgent) Run(ctx context.Context, input domain.AnalysisInput) (any, error) {
	reply, err := a.backend.Invoke(ctx, traitSystemPrompt, buildUserContent(input, traitDirective))
	if err != nil {
		return nil, a.failure(err)
	}

	var parsed traitReply
	if err := decodeReply(reply, &parsed); err != nil {
		a.logger.WarnContext(ctx, "trait reply could not be parsed",
			"reply_length", len(reply),
			"error", err)
		return nil, a.failure(err)
	}

	schemas := parsed.Traits
	if len(schemas) > domain.MaxTraits {
		schemas = schemas[:domain.MaxTraits]
	}

	traits := make([]domain.Trait, 0, len(schemas))
	for _, s := range schemas {
		name := s.Name
		if name == "" {
			name = domain.UnknownTraitName
		}

		score := 0.0
		if s.Score != nil {
			score = *s.Score
		}

		traits = append(traits, domain.Trait{
			Name:   name,
			Score:  domain.ClampScore(score),
			Reason: s.Reason,
		})
	}

	a.logger.DebugContext(ctx, "trait agent completed",
		"trait_count", len(traits))

	return traits, nil
}

// failure wraps an error into this agent's failure message.
func (a *TraitAgent) failure(err error) error {
	return fmt.Errorf("%s error: %w", a.Name(), err)
}
