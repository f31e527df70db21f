package types

// CheckResult holds the outcome of a keyword-count pass over a single file
type CheckResult struct {
	Path    string `json:"path"`
	Matches int    `json:"matches"`
	Error   error  `json:"error,omitempty"`
}
