package filter

import (
	"os"
	"strings"

	"logsift/internal/errors"
	"logsift/pkg/types"
)

// splitLines breaks file content into newline-delimited lines. A trailing
// newline does not produce a final empty line, and a carriage return
// before the newline is stripped so CRLF files classify the same as LF
// files.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CheckFile counts the lines of path containing at least one keyword.
// The file is never modified.
func CheckFile(path string, keywords []string) (types.CheckResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CheckResult{}, errors.IoError("cannot read file", path, err)
	}

	matches := 0
	for _, line := range splitLines(string(data)) {
		if ContainsAny(line, keywords) {
			matches++
		}
	}

	return types.CheckResult{Path: path, Matches: matches}, nil
}

// FilterFile writes the selected lines of path to its _filtered sibling.
// With keep=false (the default policy) lines containing a keyword are
// removed; with keep=true only those lines are retained. Every selected
// line is written with a trailing newline, the last one included. The
// original file is left untouched.
func FilterFile(path string, keywords []string, keep bool) (types.FilterResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FilterResult{}, errors.IoError("cannot read file", path, err)
	}

	var b strings.Builder
	kept, removed := 0, 0
	for _, line := range splitLines(string(data)) {
		selected := ContainsNone(line, keywords)
		if keep {
			selected = ContainsAny(line, keywords)
		}
		if selected {
			b.WriteString(line)
			b.WriteByte('\n')
			kept++
		} else {
			removed++
		}
	}

	out := FilteredName(path)
	if err := os.WriteFile(out, []byte(b.String()), 0644); err != nil {
		return types.FilterResult{}, errors.IoError("cannot write filtered file", out, err)
	}

	return types.FilterResult{
		Path:       path,
		OutputPath: out,
		Kept:       kept,
		Removed:    removed,
	}, nil
}
