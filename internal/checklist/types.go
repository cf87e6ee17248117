package checklist

// Checkbox represents a single checkbox line in markdown
type Checkbox struct {
	Line    int    // Line number in content
	Indent  string // Leading whitespace
	Checked bool   // true if [x] or [X]
	Text    string // Checkbox text content
	RawLine string // Original line
}

// Stats counts checkbox lines of a document.
type Stats struct {
	Total     int
	Checked   int
	Unchecked int
}
