package stylegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// FindFiles expands pattern (a path or a glob with ** support) to the
// stylesheets it matches, in glob order.
//
// Directories are dropped, and relative paths matched by ignoreFile (a
// .gitignore-style file) are skipped. A missing ignore file is fine.
func FindFiles(pattern, ignoreFile string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
	}

	gi := loadIgnore(ignoreFile)

	seen := make(map[string]bool)
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if seen[match] {
			continue
		}
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if shouldSkipFile(match, gi) {
			continue
		}
		seen[match] = true
		files = append(files, match)
	}

	return files, nil
}

// loadIgnore compiles the ignore file, or returns nil when there is none.
func loadIgnore(path string) *ignore.GitIgnore {
	if path == "" {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether path is ignored. Absolute paths are
// outside the project and never ignored.
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(path))
}

// OutputPath returns where the generated file for source is written.
func OutputPath(source, output string) string {
	return filepath.Join(filepath.Dir(source), output)
}
