package service

import (
	"context"
	"fmt"
	"log/slog"
)

// step is one remote call in a fixed deletion sequence.
//
// Ordering matters: leaf tables are deleted before the rows they reference,
// so a failed leaf delete never leaves a different leaf pointing at an
// already-deleted parent.
type step struct {
	// name identifies the step in logs and warnings, usually the table it
	// touches ("order_items", "identity").
	name string

	// fatal marks a step whose failure aborts the remaining sequence.
	// Best-effort steps (fatal=false) log their failure and continue.
	fatal bool

	run func(ctx context.Context) error
}

// runSteps executes the steps strictly in order, one at a time. The first
// failing fatal step aborts the sequence and its error is returned.
// Best-effort failures never abort; they are logged and aggregated into the
// returned warnings so callers can tell a clean run from a partial one.
//
// Nothing is retried and nothing already executed is rolled back: every step
// is a deletion or an in-place update, so there is nothing to restore. The
// risk lives entirely in the ordering.
func runSteps(ctx context.Context, log *slog.Logger, steps []step) ([]string, error) {
	var warnings []string

	for _, st := range steps {
		err := st.run(ctx)
		if err == nil {
			continue
		}

		if st.fatal {
			log.Error("fatal step failed, aborting sequence",
				"step", st.name,
				"completed_warnings", len(warnings),
				"error", err)
			return warnings, fmt.Errorf("%s: %w", st.name, err)
		}

		log.Warn("best-effort step failed, continuing",
			"step", st.name,
			"error", err)
		warnings = append(warnings, fmt.Sprintf("%s: %v", st.name, err))
	}

	return warnings, nil
}
