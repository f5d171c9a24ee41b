package report

import (
	"fmt"
	"strings"

	"github.com/codesweep/codesweep/pkg/category"
)

const (
	categoryRule = "------------------------------------------------------------"
	epilogueRule = "======================================================================"
)

// Render produces the human-readable report text.
func (r *Report) Render() string {
	var s strings.Builder

	for _, cat := range category.All() {
		files := r.buckets[cat]
		if len(files) == 0 {
			continue
		}

		s.WriteString(fmt.Sprintf("\n%s (%d):\n", strings.ToUpper(string(cat)), len(files)))
		s.WriteString(categoryRule + "\n")
		for _, f := range files {
			s.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	if r.strict {
		s.WriteString(fmt.Sprintf("\n\nTOTAL TRULY UNUSED: %d files\n", r.Total()))
	} else {
		s.WriteString(fmt.Sprintf("\n\nTOTAL: %d potentially unused files\n", r.Total()))
	}

	s.WriteString(r.renderCaveats())
	return s.String()
}

// renderCaveats reminds the reader that detection is a textual heuristic.
func (r *Report) renderCaveats() string {
	var s strings.Builder

	s.WriteString("\nNOTE: Files may still be used via:\n")
	s.WriteString("- Index file re-exports\n")
	s.WriteString("- Dynamic imports\n")
	s.WriteString("- Entry points\n")
	s.WriteString("- Non-import references (like typeof)\n")

	if r.strict && r.Total() > 0 {
		s.WriteString("\n" + epilogueRule + "\n")
		s.WriteString("RECOMMENDATIONS:\n")
		s.WriteString(epilogueRule + "\n")
		s.WriteString("1. Documentation/Guide files: review if still needed for reference\n")
		s.WriteString("2. Services: may be infrastructure not yet integrated\n")
		s.WriteString("3. Components/Screens: likely deprecated features\n")
		s.WriteString("4. Consider archiving or deleting to reduce codebase size\n")
	}

	return s.String()
}
