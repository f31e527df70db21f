package filter

import (
	"os"
	"path/filepath"
	"strings"

	"logsift/internal/errors"
	"logsift/pkg/types"
)

// Group collects the lines assigned to one split keyword.
type Group struct {
	Keyword string
	Lines   []string
}

// SplitLines partitions lines over the group keywords. Each line goes to
// the first group whose keyword it contains; lines matching no group are
// dropped. Group order follows the keyword order.
func SplitLines(lines []string, keywords []string) []Group {
	groups := make([]Group, len(keywords))
	for i, k := range keywords {
		groups[i].Keyword = k
	}

	for _, line := range lines {
		for i, k := range keywords {
			if strings.Contains(line, k) {
				groups[i].Lines = append(groups[i].Lines, line)
				break
			}
		}
	}
	return groups
}

// SplitFile reads path, partitions its lines over the group keywords, and
// writes one sibling file per group named <stem>_<keyword><ext>, the
// keyword slugged down to filename-safe characters. It returns the
// written groups alongside their per-group results.
func SplitFile(path string, keywords []string) ([]Group, []types.SplitResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.IoError("cannot read file", path, err)
	}

	groups := SplitLines(splitLines(string(data)), keywords)

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	results := make([]types.SplitResult, 0, len(groups))
	for _, g := range groups {
		out := stem + "_" + Slug(g.Keyword) + ext

		var b strings.Builder
		for _, line := range g.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		if err := os.WriteFile(out, []byte(b.String()), 0644); err != nil {
			return nil, nil, errors.IoError("cannot write split file", out, err)
		}

		results = append(results, types.SplitResult{
			Keyword: g.Keyword,
			Path:    out,
			Lines:   len(g.Lines),
		})
	}

	return groups, results, nil
}

// Slug reduces a keyword to a filename-safe token: letters and digits
// pass through, everything else collapses to single underscores.
func Slug(keyword string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range keyword {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
