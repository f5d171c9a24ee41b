package sweeper

import "errors"

// Error definitions for sweeper package.
var (
	// Initialization errors.
	ErrAlreadyInitialized = errors.New("codesweep is already initialized")

	// Cleanup errors.
	ErrCleanCancelled = errors.New("cleanup cancelled by user")
	ErrNoTargets      = errors.New("no cleanup targets given")
)
