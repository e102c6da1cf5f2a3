package usecase

import (
	"context"
	"fmt"
)

// provisionStep is one write in a multi-record provisioning operation.
// compensate undoes the step after a later step fails; steps that need no
// undo leave it nil.
type provisionStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// runProvisioning executes steps in order. When a step fails, the completed
// steps are compensated in reverse order and the step's error is returned.
// Each compensation is attempted exactly once; if one fails the store is
// left inconsistent and the error wraps ErrInconsistentState so callers can
// surface it loudly instead of reporting a generic failure.
func runProvisioning(ctx context.Context, steps []provisionStep) error {
	completed := make([]provisionStep, 0, len(steps))

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			for i := len(completed) - 1; i >= 0; i-- {
				undo := completed[i]
				if undo.compensate == nil {
					continue
				}
				if cerr := undo.compensate(ctx); cerr != nil {
					return fmt.Errorf("%w: step %q failed (%v) and undo of %q failed: %v",
						ErrInconsistentState, step.name, err, undo.name, cerr)
				}
			}
			return err
		}
		completed = append(completed, step)
	}

	return nil
}
