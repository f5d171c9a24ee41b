package sweeper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/refcount"
	"github.com/codesweep/codesweep/pkg/report"
	"github.com/codesweep/codesweep/pkg/walker"
)

// ScanOpts contains optional parameters for Scan.
type ScanOpts struct {
	// RootDir overrides the configured source root.
	RootDir string
	// Strict switches to the boolean import-pattern variant.
	Strict bool
	// Threshold overrides the configured reference count cutoff when set.
	Threshold *int
}

// Scan walks the source tree and reports potentially unused files.
func (s *realSweeper) Scan(opts ...ScanOpts) (*report.Report, error) {
	cfg, err := s.getConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	strict := false
	threshold := cfg.Threshold
	for _, opt := range opts {
		if opt.RootDir != "" {
			cfg.RootDir = opt.RootDir
		}
		if opt.Threshold != nil {
			threshold = *opt.Threshold
		}
		strict = strict || opt.Strict
	}

	s.VerbosePrint("Scanning %s (strict=%t, threshold=%d, failure policy=%s)",
		cfg.RootDir, strict, threshold, cfg.FailurePolicy)

	w := walker.NewWalker(walker.NewWalkerParams{FS: s.deps.FS, Config: cfg})

	candidates, err := w.ListCandidates()
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	searchFiles, err := w.ListSearchFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list search files: %w", err)
	}

	counter := refcount.NewCounter(refcount.NewCounterParams{
		FS:          s.deps.FS,
		SearchFiles: searchFiles,
	})

	result := report.NewReport(report.NewReportParams{Strict: strict})
	for _, candidate := range candidates {
		unused, err := s.evaluateCandidate(counter, cfg, candidate, strict, threshold)
		if err != nil {
			// A lookup failure never aborts the scan; the configured policy
			// decides the candidate's fate.
			s.applyFailurePolicy(result, cfg, candidate, err)
			continue
		}
		if unused {
			result.Add(candidate)
		}
	}

	for _, failed := range counter.Failures() {
		s.VerbosePrint("Skipped unreadable file during search: %s", failed)
	}

	return result, nil
}

// evaluateCandidate decides whether a single candidate is potentially unused.
func (s *realSweeper) evaluateCandidate(
	counter refcount.Counter,
	cfg config.Config,
	candidate string,
	strict bool,
	threshold int,
) (bool, error) {
	base := baseName(candidate, cfg.Extensions)

	if strict {
		used, err := counter.HasImportReference(base, candidate)
		if err != nil {
			return false, err
		}
		return !used, nil
	}

	count, err := counter.CountReferences(base, candidate)
	if err != nil {
		return false, err
	}
	return count <= threshold, nil
}

// applyFailurePolicy folds a candidate evaluation error into the configured default.
func (s *realSweeper) applyFailurePolicy(result *report.Report, cfg config.Config, candidate string, err error) {
	switch cfg.FailurePolicy {
	case config.PolicyAssumeUnused:
		s.VerbosePrint("Lookup failed for %s, assuming unused: %v", candidate, err)
		result.Add(candidate)
	default:
		s.VerbosePrint("Lookup failed for %s, assuming used: %v", candidate, err)
	}
}

// baseName strips the matching configured extension from a file name.
func baseName(path string, extensions []string) string {
	name := filepath.Base(path)
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
