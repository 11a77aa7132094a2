package analysis

import (
	"context"

	"github.com/emberdate/onboarding-api/internal/domain"
)

// Role identifies which part of the merged AnalysisResult a task supplies.
// Each role owns disjoint fields of the result, so the merge is a pure
// structural combination with no precedence rules.
type Role string

// Task roles.
const (
	// RoleInsight marks the task supplying the domain.Insight payload.
	RoleInsight Role = "insight"

	// RoleTraits marks the task supplying the []domain.Trait payload.
	RoleTraits Role = "traits"
)

// Task represents one independently schedulable unit of analysis work.
// Implementations share no mutable state, never mutate the input, and
// contain their own errors: a backend failure or an unparseable reply is
// returned as an error from Run, never raised as a panic.
type Task interface {
	// Name returns the task's human-readable identifier, used as the
	// prefix of its failure messages.
	Name() string

	// Role returns the result field this task supplies on success.
	Role() Role

	// Run executes the task against the shared input and returns its
	// typed payload, or an error describing the task's own failure.
	Run(ctx context.Context, input domain.AnalysisInput) (any, error)
}
