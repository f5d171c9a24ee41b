// Package config provides configuration management functionality for the codesweep application.
package config

import (
	"fmt"
	"strings"
)

// Failure policy values for reference-count lookups that error out.
const (
	// PolicyAssumeUsed treats a failed candidate evaluation as "referenced":
	// a read error never promotes a file toward deletion.
	PolicyAssumeUsed = "assume-used"
	// PolicyAssumeUnused treats a failed candidate evaluation as "zero references".
	PolicyAssumeUnused = "assume-unused"
)

// Config represents the application configuration.
type Config struct {
	// RootDir is the source tree to scan.
	RootDir string `yaml:"root_dir"`
	// Extensions lists the accepted source file suffixes.
	Extensions []string `yaml:"extensions"`
	// ExcludePatterns lists path substrings that disqualify a file from candidacy.
	ExcludePatterns []string `yaml:"exclude_patterns"`
	// KnownUsed lists base file names presumed always used (entry points).
	KnownUsed []string `yaml:"known_used"`
	// Threshold is the reference count at or below which a candidate is reported.
	Threshold int `yaml:"threshold"`
	// FailurePolicy decides a candidate's fate when its evaluation errors.
	FailurePolicy string `yaml:"failure_policy"`
	// ReportFile is where cleanup completion reports are persisted.
	ReportFile string `yaml:"report_file"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return ErrRootDirEmpty
	}

	if len(c.Extensions) == 0 {
		return ErrExtensionsEmpty
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrExtensionFormat, ext)
		}
	}

	if c.Threshold < 0 {
		return ErrThresholdNegative
	}

	switch c.FailurePolicy {
	case PolicyAssumeUsed, PolicyAssumeUnused:
	default:
		return fmt.Errorf("%w: %q", ErrFailurePolicyInvalid, c.FailurePolicy)
	}

	if c.ReportFile == "" {
		return ErrReportFileEmpty
	}

	return nil
}
