// Package walker enumerates candidate source files for unused-file detection.
package walker

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=walker.go -destination=mockwalker.gen.go -package=walker

// Walker interface provides source tree enumeration functionality.
type Walker interface {
	// ListCandidates returns the files eligible for unused-ness evaluation:
	// accepted extensions minus exclusion patterns and known-used entry points.
	ListCandidates() ([]string, error)

	// ListSearchFiles returns every file with an accepted extension under the
	// root. Excluded files (barrels, tests, entry points) still contribute to
	// reference counts even though they are not candidates themselves.
	ListSearchFiles() ([]string, error)
}

// NewWalkerParams contains parameters for creating a new Walker instance.
type NewWalkerParams struct {
	FS     fs.FS
	Config config.Config
}

type realWalker struct {
	fs     fs.FS
	config config.Config
}

// NewWalker creates a new Walker instance.
func NewWalker(params NewWalkerParams) Walker {
	return &realWalker{
		fs:     params.FS,
		config: params.Config,
	}
}

// ListCandidates returns the files eligible for unused-ness evaluation.
func (w *realWalker) ListCandidates() ([]string, error) {
	files, err := w.ListSearchFiles()
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, path := range files {
		if w.isExcluded(path) {
			continue
		}
		candidates = append(candidates, path)
	}

	return candidates, nil
}

// ListSearchFiles returns every file with an accepted extension under the root.
func (w *realWalker) ListSearchFiles() ([]string, error) {
	root := w.config.RootDir

	// A missing root silently yields an empty result
	exists, err := w.fs.Exists(root)
	if err != nil {
		return nil, fmt.Errorf("failed to check root directory: %w", err)
	}
	if !exists {
		return nil, nil
	}

	var files []string
	if err := w.walk(root, &files); err != nil {
		return nil, err
	}

	// Directory traversal order is not guaranteed; sort for determinism
	sort.Strings(files)
	return files, nil
}

// walk recursively collects accepted files under dir.
func (w *realWalker) walk(dir string, files *[]string) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := w.walk(path, files); err != nil {
				return err
			}
			continue
		}
		if w.hasAcceptedExtension(entry.Name()) {
			*files = append(*files, path)
		}
	}

	return nil
}

// hasAcceptedExtension checks the file name against the configured extensions.
func (w *realWalker) hasAcceptedExtension(name string) bool {
	for _, ext := range w.config.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// isExcluded checks exclusion substrings and the known-used entry point list.
func (w *realWalker) isExcluded(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range w.config.ExcludePatterns {
		if strings.Contains(slashed, pattern) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, known := range w.config.KnownUsed {
		if base == known {
			return true
		}
	}

	return false
}
