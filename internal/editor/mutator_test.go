package editor_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/editor"
	"delete-on-check/internal/model"
)

func lines(b *editor.TextBuffer) []string {
	out := make([]string, 0, b.LastLine()+1)
	for i := 0; i <= b.LastLine(); i++ {
		out = append(out, b.Line(i))
	}
	return out
}

func TestDeleteLines(t *testing.T) {
	ctx := context.Background()
	m := editor.NewMutator(&mockLogger{})

	t.Run("descending plan keeps survivors in order", func(t *testing.T) {
		src := []string{"- [x] zero", "one", "- [x] two", "three", "four", "- [X] five"}
		b := editor.NewBuffer(strings.Join(src, "\n"))

		n := m.DeleteLines(ctx, b, checklist.DeletionPlan{5, 2, 0})
		if n != 3 {
			t.Errorf("deleted = %d, want 3", n)
		}
		if got := lines(b); !reflect.DeepEqual(got, []string{"one", "three", "four"}) {
			t.Errorf("got %q", got)
		}
	})

	t.Run("single line buffer becomes one empty line", func(t *testing.T) {
		b := editor.NewBuffer("- [x] done")
		if n := m.DeleteLines(ctx, b, checklist.DeletionPlan{0}); n != 1 {
			t.Errorf("deleted = %d, want 1", n)
		}
		if b.Value() != "" || b.LastLine() != 0 {
			t.Errorf("got %q with last line %d", b.Value(), b.LastLine())
		}
	})

	t.Run("last line with predecessor leaves no blank line", func(t *testing.T) {
		b := editor.NewBuffer("keep\n- [x] done")
		m.DeleteLines(ctx, b, checklist.DeletionPlan{1})
		if got := lines(b); !reflect.DeepEqual(got, []string{"keep"}) {
			t.Errorf("got %q", got)
		}
	})

	t.Run("trailing newline is preserved", func(t *testing.T) {
		b := editor.NewBuffer("keep\n- [x] done\n")
		m.ApplyChecked(ctx, b)
		if got := b.Value(); got != "keep\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("changed line is skipped", func(t *testing.T) {
		b := editor.NewBuffer("a\n- [x] b\n- [x] c")
		plan := checklist.PlanText(b.Value())

		// line 1 is unchecked after the scan
		b.ReplaceRange(model.Position{Line: 1, Ch: 3}, model.Position{Line: 1, Ch: 4}, " ")

		if n := m.DeleteLines(ctx, b, plan); n != 1 {
			t.Errorf("deleted = %d, want 1", n)
		}
		if got := b.Value(); got != "a\n- [ ] b" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("out of range index is skipped", func(t *testing.T) {
		b := editor.NewBuffer("- [x] a")
		if n := m.DeleteLines(ctx, b, checklist.DeletionPlan{7, 0}); n != 1 {
			t.Errorf("deleted = %d, want 1", n)
		}
	})

	t.Run("scenario from a full note", func(t *testing.T) {
		b := editor.NewBuffer("#deleteoncheck\n- [ ] todo\n- [x] done\n- [X] also done\nnote")
		if n := m.ApplyChecked(ctx, b); n != 2 {
			t.Errorf("deleted = %d, want 2", n)
		}
		want := []string{"#deleteoncheck", "- [ ] todo", "note"}
		if got := lines(b); !reflect.DeepEqual(got, want) {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("every line checked", func(t *testing.T) {
		b := editor.NewBuffer("- [x] a\n- [x] b\n- [x] c")
		m.ApplyChecked(ctx, b)
		if b.Value() != "" || b.LastLine() != 0 {
			t.Errorf("got %q", b.Value())
		}
	})

	t.Run("rescan after delete is a no-op", func(t *testing.T) {
		b := editor.NewBuffer("x\n- [x] y\nz")
		m.ApplyChecked(ctx, b)
		rev := b.Revision()
		if n := m.ApplyChecked(ctx, b); n != 0 || b.Revision() != rev {
			t.Errorf("expected no further edits, deleted %d", n)
		}
	})
}
