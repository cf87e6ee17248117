package usecase

import (
	"context"

	"delete-on-check/internal/document"
	"delete-on-check/internal/vault"
)

// Sweep rewrites every opted-in document once. Per-document failures are logged
// and reported alongside the documents that did succeed.
func (uc *implUseCase) Sweep(ctx context.Context, input document.SweepInput) (document.SweepOutput, error) {
	results, err := uc.sweeper.Sweep(ctx, vault.SweepOptions{DryRun: input.DryRun})
	out := document.SweepOutput{
		Results: make([]document.SweepResult, 0, len(results)),
		DryRun:  input.DryRun,
		At:      uc.now(),
	}
	for _, r := range results {
		out.Results = append(out.Results, document.SweepResult{
			Path:    r.Path,
			Removed: r.Removed,
			Written: r.Written,
		})
	}

	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.Sweep: %v", err)
		return out, err
	}
	uc.l.Infof(ctx, "document.usecase.Sweep: %d document(s), dry_run=%v", len(out.Results), input.DryRun)
	return out, nil
}
