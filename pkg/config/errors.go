package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("codesweep configuration not found. Run 'codesweep init' to initialize")

	// Configuration validation errors.
	ErrRootDirEmpty         = errors.New("root_dir cannot be empty")
	ErrExtensionsEmpty      = errors.New("extensions cannot be empty")
	ErrExtensionFormat      = errors.New("extensions must start with a dot")
	ErrThresholdNegative    = errors.New("threshold cannot be negative")
	ErrFailurePolicyInvalid = errors.New("failure_policy must be assume-used or assume-unused")
	ErrReportFileEmpty      = errors.New("report_file cannot be empty")
)
