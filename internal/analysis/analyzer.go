package analysis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/generation"
)

// Analyzer is the caller-facing entry point for onboarding analysis. The
// fixed task set is built once at construction and reused; the Analyzer
// itself holds no per-invocation state, so one instance may serve many
// concurrent callers.
type Analyzer struct {
	tasks  []Task
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer whose agents call the given backend.
func NewAnalyzer(backend generation.Backend, logger *slog.Logger) (*Analyzer, error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Analyzer{
		tasks: []Task{
			NewInsightAgent(backend, logger),
			NewTraitAgent(backend, logger),
		},
		logger: logger,
	}, nil
}

// Analyze runs every agent concurrently against the input and returns the
// merged AnalysisResult, or an error satisfying
// errors.Is(err, ErrAnalysisFailed) whose *AggregateError carries each
// agent's failure message. The input's user ID is echoed into the result
// unchanged.
func (a *Analyzer) Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error) {
	started := time.Now()
	a.logger.InfoContext(ctx, "starting onboarding analysis",
		"user_id", input.UserID,
		"task_count", len(a.tasks))

	result, err := run(ctx, input, a.tasks)
	if err != nil {
		var aggErr *AggregateError
		if errors.As(err, &aggErr) {
			a.logger.ErrorContext(ctx, "onboarding analysis failed",
				"user_id", input.UserID,
				"failure_count", len(aggErr.Failures),
				"failures", aggErr.Failures,
				"elapsed", time.Since(started))
		} else {
			a.logger.ErrorContext(ctx, "onboarding analysis failed",
				"user_id", input.UserID,
				"error", err,
				"elapsed", time.Since(started))
		}
		return nil, err
	}

	a.logger.InfoContext(ctx, "onboarding analysis completed",
		"user_id", input.UserID,
		"keyword_count", len(result.Insight.Keywords),
		"trait_count", len(result.Traits),
		"elapsed", time.Since(started))

	return result, nil
}
