package document

import (
	"time"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/model"
)

// --- Domain Model ---

// Document is a vault note as the editing host sees it.
type Document struct {
	model.Document
	Open    bool            // A buffer exists for the document
	Enabled bool            // The text carries the opt-in marker
	Stats   checklist.Stats // Checkbox counts of Content
}

// SweepResult is one document rewritten (or that would be, on a dry run).
type SweepResult struct {
	Path    string
	Removed int
	Written bool
}

// --- UseCase Inputs ---

type PathInput struct {
	Path string
}

type EditInput struct {
	Path string
	From model.Position
	To   model.Position
	Text string
}

type SetContentInput struct {
	Path    string
	Content string
}

type SweepInput struct {
	DryRun bool
}

// --- UseCase Outputs ---

type DocumentOutput struct {
	Document Document
}

type ListOutput struct {
	Files  []string   // Every document in the vault
	Open   []Document // Open buffers, sorted by path
	Active string     // Active document path, empty when none
}

type SweepOutput struct {
	Results []SweepResult
	DryRun  bool
	At      time.Time
}
