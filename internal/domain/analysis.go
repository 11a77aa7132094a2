package domain

import "errors"

// Bounds applied to agent output before it is placed into a result.
const (
	// MaxKeywords is the maximum number of keywords kept in an Insight.
	// Over-production by the backend is truncated, never rejected.
	MaxKeywords = 5

	// MaxTraits is the maximum number of traits kept in a result.
	MaxTraits = 5

	// MinScore and MaxScore bound a trait score. Scores outside this
	// range are clamped, never rejected.
	MinScore = -1.0
	MaxScore = 1.0
)

// UnknownTraitName is the sentinel used when the backend omits a trait
// name rather than failing the whole analysis.
const UnknownTraitName = "unknown_trait"

// Common validation errors for AnalysisInput.
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyQuestion = errors.New("question cannot be empty")
	ErrEmptyAnswer   = errors.New("answer cannot be empty")
)

// AnalysisInput is a single onboarding question/answer pair submitted for
// analysis. It is constructed once per request, passed by value, and never
// mutated by the agents that read it.
type AnalysisInput struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewAnalysisInput creates a validated AnalysisInput.
// Returns an error if any field is empty.
func NewAnalysisInput(userID, question, answer string) (AnalysisInput, error) {
	input := AnalysisInput{
		UserID:   userID,
		Question: question,
		Answer:   answer,
	}

	if err := input.Validate(); err != nil {
		return AnalysisInput{}, err
	}

	return input, nil
}

// Validate checks that the AnalysisInput has valid data.
// Returns an error if any field fails validation.
func (in AnalysisInput) Validate() error {
	if in.UserID == "" {
		return ErrEmptyUserID
	}

	if in.Question == "" {
		return ErrEmptyQuestion
	}

	if in.Answer == "" {
		return ErrEmptyAnswer
	}

	return nil
}

// Insight is the natural-language summary and key phrases produced by the
// insight agent for one answer.
type Insight struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// Trait is a single scored personality/dating trait with one-sentence
// reasoning, produced by the trait agent.
type Trait struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// AnalysisResult is the merged output of all agents for one input. It is
// only ever built from an all-success outcome set; no partial result
// exists in the domain.
type AnalysisResult struct {
	UserID  string  `json:"user_id"`
	Insight Insight `json:"insight"`
	Traits  []Trait `json:"traits"`
}

// ClampScore forces a trait score into [MinScore, MaxScore]. Clamping is
// idempotent: an in-range score is returned unchanged.
func ClampScore(score float64) float64 {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
