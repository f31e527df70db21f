package types

// FilterResult holds the outcome of a filter pass over a single file.
// OutputPath is the sibling file the kept lines were written to; Kept and
// Removed count the lines on each side of the split.
type FilterResult struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Kept       int    `json:"kept"`
	Removed    int    `json:"removed"`
	Error      error  `json:"error,omitempty"`
}
