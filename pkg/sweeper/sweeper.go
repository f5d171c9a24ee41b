// Package sweeper wires the detection pipeline and the cleanup operations
// behind a single facade.
package sweeper

import (
	"fmt"

	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/dependencies"
	"github.com/codesweep/codesweep/pkg/logger"
	"github.com/codesweep/codesweep/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=sweeper.go -destination=mocksweeper.gen.go -package=sweeper

// Sweeper interface provides unused-file detection and cleanup functionality.
type Sweeper interface {
	// Scan walks the source tree and reports potentially unused files.
	Scan(opts ...ScanOpts) (*report.Report, error)
	// Clean deletes or archives the given targets and persists a completion report.
	Clean(params CleanParams) (*report.CompletionReport, error)
	// Init initializes codesweep configuration.
	Init(opts InitOpts) error
	// SetLogger sets the logger for this Sweeper instance.
	SetLogger(logger logger.Logger)
	// SetVerbose toggles verbose diagnostics.
	SetVerbose(verbose bool)
}

// NewSweeperParams contains parameters for creating a new Sweeper instance.
type NewSweeperParams struct {
	Dependencies *dependencies.Dependencies
}

type realSweeper struct {
	deps    *dependencies.Dependencies
	verbose bool
}

// NewSweeper creates a new Sweeper instance.
func NewSweeper(params NewSweeperParams) (Sweeper, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realSweeper{
		deps: deps,
	}, nil
}

// SetLogger sets the logger for this Sweeper instance.
func (s *realSweeper) SetLogger(logger logger.Logger) {
	s.deps.Logger = logger
}

// SetVerbose toggles verbose diagnostics.
func (s *realSweeper) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// VerbosePrint logs a formatted message when verbose diagnostics are enabled.
func (s *realSweeper) VerbosePrint(msg string, args ...interface{}) {
	if s.verbose && s.deps.Logger != nil {
		s.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// getConfig gets the configuration from the config manager with fallback.
func (s *realSweeper) getConfig() (config.Config, error) {
	return s.deps.Config.GetConfigWithFallback()
}
