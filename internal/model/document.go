package model

// Document is a note in the vault.
type Document struct {
	Path    string // Slash-separated, relative to the vault root
	Content string // Full text
	Active  bool   // True when the document is the editing host's active document
	Dirty   bool   // Buffer differs from the last load/save
}

// Position addresses a point in a line buffer; both fields are zero-based.
type Position struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// Environment names accepted by environment.name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
