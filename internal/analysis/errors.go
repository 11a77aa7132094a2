package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the analysis package.
var (
	// ErrAnalysisFailed is returned when one or more agents failed and no
	// result could be built. Use errors.As with *AggregateError to inspect
	// the individual failure messages.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrIncompleteResult is returned when every agent reported success but
	// a required payload role is absent or mistyped. It should not occur
	// with a well-formed task set and is never retried.
	ErrIncompleteResult = errors.New("incomplete analysis result")

	// ErrNoTasks is returned when the executor is invoked with an empty
	// task set.
	ErrNoTasks = errors.New("task set cannot be empty")
)

// AggregateError carries every per-task failure message from one
// invocation, in task registration order, so no diagnostic information is
// lost when more than one agent fails.
type AggregateError struct {
	Failures []string
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	return fmt.Sprintf("%v: %s", ErrAnalysisFailed, strings.Join(e.Failures, "; "))
}

// Unwrap makes errors.Is(err, ErrAnalysisFailed) hold for AggregateError.
func (e *AggregateError) Unwrap() error {
	return ErrAnalysisFailed
}
