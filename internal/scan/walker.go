// Package scan enumerates the files a directory batch operates on.
package scan

import (
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"

	"logsift/internal/filter"
	"logsift/internal/log"
)

// Walker finds the regular files under a root that qualify for batch
// processing. Files whose name carries the filter output marker are
// always excluded so repeated runs never pick up their own output; an
// optional glob pattern further restricts qualifying basenames.
type Walker struct {
	pattern glob.Glob
}

// New creates a walker with no basename restriction.
func New() *Walker {
	return &Walker{}
}

// NewWithPattern creates a walker that only yields files whose basename
// matches the glob pattern, e.g. "*.log".
func NewWithPattern(pattern string) (*Walker, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Walker{pattern: g}, nil
}

// Files walks root recursively and returns the qualifying file paths.
// Directories, symlinked directories, and unreadable entries are skipped
// silently; traversal order is filesystem-dependent.
func (w *Walker) Files(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Debug("skipping unreadable entry: %s: %v", path, err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if filter.IsFilteredName(name) {
			return nil
		}
		if w.pattern != nil && !w.pattern.Match(name) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
