package refcount

import (
	"fmt"
	"regexp"
)

// compileWordPattern builds a whole-token pattern for a base name, so that
// "User" never matches inside "UserProfile".
func compileWordPattern(baseName string) (*regexp.Regexp, error) {
	if baseName == "" {
		return nil, ErrBaseNameEmpty
	}
	return regexp.Compile(`\b` + regexp.QuoteMeta(baseName) + `\b`)
}

// compileImportPattern builds a pattern matching import statements naming the
// base name, covering bare, path-prefixed and quoted module specifiers.
func compileImportPattern(baseName string) (*regexp.Regexp, error) {
	if baseName == "" {
		return nil, ErrBaseNameEmpty
	}
	expr := fmt.Sprintf(`import\s.*from\s*['"](?:[^'"]*/)?%s['"]`, regexp.QuoteMeta(baseName))
	return regexp.Compile(expr)
}
