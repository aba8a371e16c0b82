// Package types defines the cross-package data structures used by the guidegen CLI.
package types

// FileRecord is one text file captured during a repository scan.
// Path is relative to the scan root and always uses forward slashes.
type FileRecord struct {
	Path    string
	Content string
}

// ScanResult holds the files collected from a repository in discovery order.
type ScanResult struct {
	Root  string
	Files []FileRecord
}

// FileCount returns the number of collected files.
func (result ScanResult) FileCount() int {
	return len(result.Files)
}

// GenerationAttempt records the outcome of a single model invocation.
type GenerationAttempt struct {
	Model string
	Err   error
	Empty bool
}

// RunSummary captures aggregate information about a completed generation run.
type RunSummary struct {
	ProjectName    string
	FilesCollected int
	ContextChars   int
	ContextTokens  int
	Model          string
	OutputPath     string
}
