package editor

import (
	"context"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/model"
	pkgLog "delete-on-check/pkg/log"
)

// Mutator deletes checked-task lines from a Buffer in place.
type Mutator struct {
	l pkgLog.Logger
}

func NewMutator(l pkgLog.Logger) *Mutator {
	return &Mutator{l: l}
}

// ApplyChecked plans against the buffer's current text and deletes the matches.
func (m *Mutator) ApplyChecked(ctx context.Context, buf Buffer) int {
	return m.DeleteLines(ctx, buf, checklist.PlanText(buf.Value()))
}

// DeleteLines removes the planned lines, highest index first, and returns how many
// were removed. A line that no longer matches when its turn comes is skipped.
func (m *Mutator) DeleteLines(ctx context.Context, buf Buffer, plan checklist.DeletionPlan) int {
	deleted := 0
	for _, i := range plan {
		if i < 0 || i > buf.LastLine() {
			continue
		}

		line := buf.Line(i)
		if !checklist.IsChecked(line) {
			m.l.Debugf(ctx, "editor: line %d changed before delete, skipping", i+1)
			continue
		}

		from, to := deletionSpan(buf, i, line)
		buf.ReplaceRange(from, to, "")
		deleted++

		m.l.Debugf(ctx, "editor: deleted checked task on line %d: %s", i+1, line)
	}
	return deleted
}

// deletionSpan covers line i and one newline. The last line has none after it, so
// the newline before it goes instead; a lone line is just emptied.
func deletionSpan(buf Buffer, i int, line string) (model.Position, model.Position) {
	if i < buf.LastLine() {
		return model.Position{Line: i}, model.Position{Line: i + 1}
	}

	to := model.Position{Line: i, Ch: len(line)}
	if i == 0 {
		return model.Position{}, to
	}
	return model.Position{Line: i - 1, Ch: len(buf.Line(i - 1))}, to
}
