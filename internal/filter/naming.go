package filter

import (
	"path/filepath"
	"strings"
)

// Marker is inserted before the extension of generated output files.
// Filenames already carrying it are excluded from directory batches so
// repeated runs never reprocess their own output.
const Marker = "_filtered"

// FilteredName derives the sibling output path for an input path:
// name.ext becomes name_filtered.ext, an extensionless name becomes
// name_filtered.
func FilteredName(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return stem + Marker + ext
}

// IsFilteredName reports whether a basename carries the output marker.
func IsFilteredName(name string) bool {
	return strings.Contains(name, Marker)
}
