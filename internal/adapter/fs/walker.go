package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker discovers javadoc archives under a root directory using
// include/exclude glob patterns.
type Walker struct {
	includes []string
	excludes []string
}

// NewWalker creates a walker. With no include patterns, every ZIP file
// matches.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.zip"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Walk returns the paths of all matching archives under root.
func (w *Walker) Walk(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var archives []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if w.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			archives = append(archives, path)
		}
		return nil
	})

	return archives, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
