package types

// SplitResult describes one group file produced by a split operation.
type SplitResult struct {
	Keyword string `json:"keyword"`
	Path    string `json:"path"`
	Lines   int    `json:"lines"`
}
