// Package report holds scan results and renders them for humans, and persists
// cleanup completion reports.
package report

import (
	"github.com/codesweep/codesweep/pkg/category"
)

// Report collects potentially unused files grouped by category. Files keep
// their insertion order inside each bucket.
type Report struct {
	strict  bool
	buckets map[category.Category][]string
}

// NewReportParams contains parameters for creating a new Report.
type NewReportParams struct {
	// Strict marks the report as produced by the import-pattern variant; it
	// changes the rendered footer.
	Strict bool
}

// NewReport creates an empty report.
func NewReport(params NewReportParams) *Report {
	return &Report{
		strict:  params.Strict,
		buckets: make(map[category.Category][]string),
	}
}

// Add classifies a file path and appends it to its category bucket.
func (r *Report) Add(path string) {
	cat := category.Classify(path)
	r.buckets[cat] = append(r.buckets[cat], path)
}

// Files returns the bucket for a category.
func (r *Report) Files(cat category.Category) []string {
	return r.buckets[cat]
}

// Total returns the number of reported files across all categories.
func (r *Report) Total() int {
	total := 0
	for _, files := range r.buckets {
		total += len(files)
	}
	return total
}
