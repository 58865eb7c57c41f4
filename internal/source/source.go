// Package source locates and opens the single input file of a run.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInputUnavailable means the input could not be found or opened at all.
// It is the only fatal condition of a run and is raised before any output
// is written.
var ErrInputUnavailable = errors.New("input unavailable")

// Resolve turns a literal path or a glob pattern into exactly one file path.
// Recursive patterns like logs/**/app.txt are supported via doublestar.
func Resolve(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("no input path given: %w", ErrInputUnavailable)
	}

	// A literal path wins even if it contains glob metacharacters.
	if info, err := os.Stat(pattern); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("%s is a directory: %w", pattern, ErrInputUnavailable)
		}
		return pattern, nil
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return "", fmt.Errorf("invalid input pattern %q: %w", pattern, err)
		}
		return "", fmt.Errorf("could not find %s: %w", pattern, errors.Join(ErrInputUnavailable, err))
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("could not find %s: %w", pattern, ErrInputUnavailable)
	case 1:
		return filepath.Clean(matches[0]), nil
	default:
		return "", fmt.Errorf("pattern %q matched %d files, expected exactly one", pattern, len(matches))
	}
}

// Open opens the input file for reading. Any failure is reported as
// ErrInputUnavailable.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, errors.Join(ErrInputUnavailable, err))
	}
	return f, nil
}
