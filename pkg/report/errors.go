package report

import "errors"

// Error definitions for report package.
var (
	ErrReportFileNotSet = errors.New("report file path is not set")
)
