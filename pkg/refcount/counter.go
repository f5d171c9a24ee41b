// Package refcount counts textual references to a file's base name across a
// source tree. It is a heuristic proxy for "is this module imported anywhere":
// no import parsing, no dependency graph, just word-boundary text matching
// over file contents read directly (no external search process).
package refcount

import (
	"fmt"
	"strings"

	"github.com/codesweep/codesweep/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=counter.go -destination=mockcounter.gen.go -package=refcount

// Counter interface provides reference counting over a fixed set of search files.
type Counter interface {
	// CountReferences counts lines across the search set containing a
	// word-boundary match of baseName, excluding lines from selfPath.
	CountReferences(baseName, selfPath string) (int, error)

	// HasImportReference reports whether any line outside selfPath looks like
	// an import statement naming baseName.
	HasImportReference(baseName, selfPath string) (bool, error)

	// Failures returns the search files that could not be read. These files
	// are skipped during matching; they never abort a scan.
	Failures() []string
}

// NewCounterParams contains parameters for creating a new Counter instance.
type NewCounterParams struct {
	FS          fs.FS
	SearchFiles []string
}

type realCounter struct {
	fs          fs.FS
	searchFiles []string

	loaded   bool
	lines    map[string][]string
	failures []string
}

// NewCounter creates a new Counter instance over the given search files.
func NewCounter(params NewCounterParams) Counter {
	return &realCounter{
		fs:          params.FS,
		searchFiles: params.SearchFiles,
	}
}

// CountReferences counts lines containing a word-boundary match of baseName.
func (c *realCounter) CountReferences(baseName, selfPath string) (int, error) {
	c.load()

	pattern, err := compileWordPattern(baseName)
	if err != nil {
		return 0, fmt.Errorf("failed to compile reference pattern for %q: %w", baseName, err)
	}

	count := 0
	for path, lines := range c.lines {
		if path == selfPath {
			continue
		}
		for _, line := range lines {
			if pattern.MatchString(line) {
				count++
			}
		}
	}

	return count, nil
}

// HasImportReference reports whether any external line imports baseName.
func (c *realCounter) HasImportReference(baseName, selfPath string) (bool, error) {
	c.load()

	pattern, err := compileImportPattern(baseName)
	if err != nil {
		return false, fmt.Errorf("failed to compile import pattern for %q: %w", baseName, err)
	}

	for path, lines := range c.lines {
		if path == selfPath {
			continue
		}
		for _, line := range lines {
			if pattern.MatchString(line) {
				return true, nil
			}
		}
	}

	return false, nil
}

// Failures returns the search files that could not be read.
func (c *realCounter) Failures() []string {
	c.load()
	return c.failures
}

// load reads the search set once; unreadable files are recorded and skipped.
func (c *realCounter) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	c.lines = make(map[string][]string, len(c.searchFiles))

	for _, path := range c.searchFiles {
		data, err := c.fs.ReadFile(path)
		if err != nil {
			c.failures = append(c.failures, path)
			continue
		}
		c.lines[path] = strings.Split(string(data), "\n")
	}
}
