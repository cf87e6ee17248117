package checklist

import (
	"regexp"
	"strings"
)

const (
	// Marker opts a document in to automatic deletion. Matched as a raw substring.
	Marker = "#deleteoncheck"

	// space is every character ECMAScript counts as whitespace, so NBSP and other
	// Unicode spaces separate tokens. RE2's \s covers ASCII only.
	space = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

	// rest is any run of characters that are not line terminators. A trailing "\r"
	// therefore stops a line from matching.
	rest = `[^\n\r\x{2028}\x{2029}]*`

	// CheckedPattern selects completed tasks: indent, "-", spaces, "[x]", spaces, rest.
	// Example: "  - [X] ship it" → groups: ["  ", "ship it"]
	CheckedPattern = `(?i)^(` + space + `*)-` + space + `+\[x\]` + space + `+(` + rest + `)$`

	// CheckboxPattern matches any single-state checkbox, used for stats only.
	CheckboxPattern = `(?i)^(` + space + `*)-` + space + `+\[([ x])\]` + space + `+(` + rest + `)$`

	lineSeparator = "\n"
)

var (
	checkedRe  = regexp.MustCompile(CheckedPattern)
	checkboxRe = regexp.MustCompile(CheckboxPattern)
)

// IsEnabled reports whether text opts in to deletion. Anywhere in the text counts,
// including code blocks and the middle of a word.
func IsEnabled(text string) bool {
	return strings.Contains(text, Marker)
}

// IsChecked reports whether a single line is a checked task.
func IsChecked(line string) bool {
	return checkedRe.MatchString(line)
}

// Lines splits text on "\n". A trailing newline yields a final empty line.
func Lines(text string) []string {
	return strings.Split(text, lineSeparator)
}

// Join is the inverse of Lines.
func Join(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

// Scan returns the ascending indices of checked-task lines.
func Scan(lines []string) []int {
	var idx []int
	for i, line := range lines {
		if IsChecked(line) {
			idx = append(idx, i)
		}
	}
	return idx
}

// ParseCheckboxes extracts every "- [ ]" / "- [x]" line with its line number.
func ParseCheckboxes(text string) []Checkbox {
	var boxes []Checkbox
	for i, line := range Lines(text) {
		m := checkboxRe.FindStringSubmatch(line)
		if len(m) != 4 {
			continue
		}
		boxes = append(boxes, Checkbox{
			Line:    i,
			Indent:  m[1],
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
			RawLine: line,
		})
	}
	return boxes
}

// GetStats counts checked and unchecked tasks in text.
func GetStats(text string) Stats {
	var st Stats
	for _, cb := range ParseCheckboxes(text) {
		st.Total++
		if cb.Checked {
			st.Checked++
		} else {
			st.Unchecked++
		}
	}
	return st
}
