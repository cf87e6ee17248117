package vault

import (
	"context"
	"errors"
	"fmt"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/editor"
	pkgLog "delete-on-check/pkg/log"
)

// Mutator removes checked-task lines from persisted documents by rewriting the
// whole file.
type Mutator struct {
	store  Store
	editor *editor.Mutator
	l      pkgLog.Logger
}

func NewMutator(store Store, em *editor.Mutator, l pkgLog.Logger) *Mutator {
	return &Mutator{
		store:  store,
		editor: em,
		l:      l,
	}
}

// Preview returns content without its checked-task lines and how many were dropped.
// The blob is treated as a buffer that is not open anywhere, so the deletion rules
// are the editor's.
func (m *Mutator) Preview(ctx context.Context, content string) (string, int) {
	buf := editor.NewBuffer(content)
	removed := m.editor.ApplyChecked(ctx, buf)
	if removed == 0 {
		return content, 0
	}
	return buf.Value(), removed
}

// Rewrite writes path back once iff at least one line of content was dropped.
// The opt-in marker is the caller's concern.
func (m *Mutator) Rewrite(ctx context.Context, path, content string) (Result, error) {
	res := Result{Path: path, Content: content}

	out, removed := m.Preview(ctx, content)
	if removed == 0 {
		return res, nil
	}

	if err := m.store.Write(ctx, path, out); err != nil {
		return res, fmt.Errorf("vault.Rewrite: %w", err)
	}

	res.Removed = removed
	res.Written = true
	res.Content = out
	m.l.Infof(ctx, "vault: removed %d checked task(s) from %s", removed, path)
	return res, nil
}

// Sweep runs Rewrite over every opted-in document. A failing document does not stop
// the others; their errors are joined.
func (m *Mutator) Sweep(ctx context.Context, opts SweepOptions) ([]Result, error) {
	paths, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var (
		results []Result
		errs    []error
	)
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		content, err := m.store.Read(ctx, p)
		if err != nil {
			m.l.Warnf(ctx, "vault: sweep read %s: %v", p, err)
			errs = append(errs, err)
			continue
		}
		if !checklist.IsEnabled(content) {
			continue
		}

		if opts.DryRun {
			out, removed := m.Preview(ctx, content)
			if removed > 0 {
				results = append(results, Result{Path: p, Removed: removed, Content: out})
			}
			continue
		}

		res, err := m.Rewrite(ctx, p, content)
		if err != nil {
			m.l.Errorf(ctx, "vault: sweep rewrite %s: %v", p, err)
			errs = append(errs, err)
			continue
		}
		if res.Written {
			results = append(results, res)
		}
	}

	return results, errors.Join(errs...)
}
