package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/emberdate/onboarding-api/internal/domain"
)

// outcome is the terminal result of one task: a typed payload or an error.
// It is written exactly once, by the task's own goroutine, and read only
// after the join point.
type outcome struct {
	task    Task
	payload any
	err     error
}

// run dispatches every task concurrently against the shared input, waits
// for all of them to reach a terminal outcome, and applies the merge
// policy: any failure means an *AggregateError carrying every failure
// message, and a result is only built from an all-success outcome set.
//
// run holds no state across invocations and is safe to call concurrently.
func run(ctx context.Context, input domain.AnalysisInput, tasks []Task) (*domain.AnalysisResult, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	// Each goroutine owns exactly one slot, so no locking is needed.
	outcomes := make([]outcome, len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t Task) {
			defer wg.Done()

			// A crashing task must not abort its siblings; a panic
			// becomes that task's failure like any other error.
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = outcome{
						task: t,
						err:  fmt.Errorf("%s error: panic: %v", t.Name(), r),
					}
				}
			}()

			payload, err := t.Run(ctx, input)
			outcomes[i] = outcome{task: t, payload: payload, err: err}
		}(i, t)
	}

	// Join point: every task runs to completion before any decision is
	// made, so partial diagnostic information is never lost.
	wg.Wait()

	var failures []string
	for _, o := range outcomes {
		if o.err != nil {
			failures = append(failures, o.err.Error())
		}
	}
	if len(failures) > 0 {
		return nil, &AggregateError{Failures: failures}
	}

	return merge(input, outcomes)
}

// merge extracts each task's typed payload by its declared role and builds
// the single AnalysisResult. Every role must be present exactly once; a
// missing or mistyped payload is ErrIncompleteResult.
func merge(input domain.AnalysisInput, outcomes []outcome) (*domain.AnalysisResult, error) {
	result := &domain.AnalysisResult{UserID: input.UserID}

	var haveInsight, haveTraits bool
	for _, o := range outcomes {
		switch o.task.Role() {
		case RoleInsight:
			insight, ok := o.payload.(domain.Insight)
			if !ok {
				return nil, fmt.Errorf("%w: task %q did not produce an insight payload",
					ErrIncompleteResult, o.task.Name())
			}
			result.Insight = insight
			haveInsight = true

		case RoleTraits:
			traits, ok := o.payload.([]domain.Trait)
			if !ok {
				return nil, fmt.Errorf("%w: task %q did not produce a traits payload",
					ErrIncompleteResult, o.task.Name())
			}
			result.Traits = traits
			haveTraits = true

		default:
			return nil, fmt.Errorf("%w: task %q has unknown role %q",
				ErrIncompleteResult, o.task.Name(), o.task.Role())
		}
	}

	if !haveInsight {
		return nil, fmt.Errorf("%w: no task supplied the insight payload", ErrIncompleteResult)
	}
	if !haveTraits {
		return nil, fmt.Errorf("%w: no task supplied the traits payload", ErrIncompleteResult)
	}

	return result, nil
}
