// Package types defines the cross-package data structures used by the promptpack CLI.
package types

const (
	DocumentKindText   = "text"
	DocumentKindSchema = "schema"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// Document is one included file rendered into the output bundle. Path is
// relative to the working directory and slash separated. Index is the 1-based
// position in final inclusion order; indices are contiguous across the run.
type Document struct {
	Path      string
	Index     int
	Kind      string
	Content   string
	Lines     int
	SizeBytes int64
}

// StatsNode is one node of the token statistics tree. Files carry their own
// token count in Tokens; directories carry the rolled-up descendant total in
// TotalTokens. Children are ordered by name.
type StatsNode struct {
	Name        string
	IsDir       bool
	Tokens      int
	TotalTokens int
	TotalFiles  int
	Children    []*StatsNode
}

// OutputSummary captures aggregate information about an emitted bundle.
type OutputSummary struct {
	TotalFiles  int
	TotalSize   string
	TotalTokens int
	Model       string
}
