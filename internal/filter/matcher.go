// Package filter implements line classification for log files: substring
// keyword matching, per-file check and filter passes, keyword splitting,
// and the parallel batch engine that fans those passes out over a
// directory's files.
package filter

import "strings"

// DefaultFilters is the keyword set used when the caller supplies none.
var DefaultFilters = []string{"tid:", "pid:", "cpu usage"}

// ContainsAny reports whether line contains at least one keyword as a
// contiguous substring. Keywords are literal: no glob or regex
// interpretation, matching is case-sensitive. An empty keyword set never
// matches.
func ContainsAny(line string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(line, k) {
			return true
		}
	}
	return false
}

// ContainsNone is the logical negation of ContainsAny for the same
// inputs: true iff line contains none of the keywords. An empty keyword
// set keeps every line.
func ContainsNone(line string, keywords []string) bool {
	return !ContainsAny(line, keywords)
}
