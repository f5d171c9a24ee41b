package refcount

import "errors"

// Error definitions for refcount package.
var (
	ErrBaseNameEmpty = errors.New("base name cannot be empty")
)
