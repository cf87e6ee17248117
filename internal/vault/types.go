package vault

// Result describes one FileMutator pass over a document.
type Result struct {
	Path    string
	Removed int    // Checked-task lines dropped
	Written bool   // False when nothing matched or on a dry run
	Content string // Content after the pass
}

// SweepOptions controls Mutator.Sweep.
type SweepOptions struct {
	DryRun bool
}
