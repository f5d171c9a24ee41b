// Package category buckets source file paths into reporting categories.
package category

import (
	"path"
	"path/filepath"
	"strings"
)

// Category identifies a report bucket for a candidate file.
type Category string

// Known categories, in report order.
const (
	Documentation Category = "documentation"
	Services      Category = "services"
	Components    Category = "components"
	Screens       Category = "screens"
	Stores        Category = "stores"
	Hooks         Category = "hooks"
	Types         Category = "types"
	Utils         Category = "utils"
	Constants     Category = "constants"
	Contexts      Category = "contexts"
	Navigation    Category = "navigation"
	Theme         Category = "theme"
	Other         Category = "other"
)

// documentationNameMarkers are file name fragments that mark a file as
// documentation-like regardless of its directory.
var documentationNameMarkers = []string{"Guide", "Validation"}

// segmentRules maps directory segments to categories, checked in this order.
// Flow components share the components bucket.
var segmentRules = []struct {
	segment  string
	category Category
}{
	{"services", Services},
	{"components", Components},
	{"flows", Components},
	{"screens", Screens},
	{"stores", Stores},
	{"hooks", Hooks},
	{"types", Types},
	{"utils", Utils},
	{"constants", Constants},
	{"contexts", Contexts},
	{"navigation", Navigation},
	{"theme", Theme},
}

// All returns the categories in report order.
func All() []Category {
	return []Category{
		Documentation,
		Services,
		Components,
		Screens,
		Stores,
		Hooks,
		Types,
		Utils,
		Constants,
		Contexts,
		Navigation,
		Theme,
		Other,
	}
}

// Classify buckets a file path into exactly one category. The documentation
// name check runs before any directory-segment check.
func Classify(filePath string) Category {
	name := path.Base(filepath.ToSlash(filePath))
	for _, marker := range documentationNameMarkers {
		if strings.Contains(name, marker) {
			return Documentation
		}
	}

	segments := strings.Split(filepath.ToSlash(filePath), "/")
	for _, rule := range segmentRules {
		for _, segment := range segments[:max(len(segments)-1, 0)] {
			if segment == rule.segment {
				return rule.category
			}
		}
	}

	return Other
}
