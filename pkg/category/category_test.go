//go:build unit

package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Category
	}{
		{"services directory", "src/services/SyncService.ts", Services},
		{"components directory", "src/components/cards/InfoCard.tsx", Components},
		{"flows share the components bucket", "src/flows/morning/MorningFlow.tsx", Components},
		{"screens directory", "src/screens/HomeScreen.tsx", Screens},
		{"stores directory", "src/stores/sessionStore.ts", Stores},
		{"hooks directory", "src/hooks/useTimer.ts", Hooks},
		{"types directory", "src/types/session.ts", Types},
		{"utils directory", "src/utils/dates.ts", Utils},
		{"constants directory", "src/constants/colors.ts", Constants},
		{"contexts directory", "src/contexts/AuthContext.tsx", Contexts},
		{"navigation directory", "src/navigation/RootNavigator.tsx", Navigation},
		{"theme directory", "src/theme/tokens.ts", Theme},
		{"unmatched path", "src/vendor/patched.ts", Other},
		{"top-level file", "src/bootstrap.ts", Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestClassify_DocumentationBeforeSegments(t *testing.T) {
	// The name check outranks the directory the file lives in.
	assert.Equal(t, Documentation, Classify("src/services/SetupGuide.ts"))
	assert.Equal(t, Documentation, Classify("src/components/FormValidation.tsx"))
}

func TestClassify_SegmentPriorityOrder(t *testing.T) {
	// services outranks components when both segments appear.
	assert.Equal(t, Services, Classify("src/components/services/Bridge.ts"))
}

func TestClassify_ExactSegmentsOnly(t *testing.T) {
	// A segment merely containing a keyword does not match.
	assert.Equal(t, Other, Classify("src/microservices/Gateway.ts"))
	// The file name itself is not a directory segment.
	assert.Equal(t, Other, Classify("src/lib/services.ts"))
}

func TestClassify_Total(t *testing.T) {
	// Every path lands in exactly one known category.
	known := make(map[Category]bool)
	for _, c := range All() {
		known[c] = true
	}

	paths := []string{
		"src/services/A.ts",
		"weird\\windows\\path\\theme\\B.ts",
		"",
		"NoDirectory.tsx",
	}
	for _, p := range paths {
		assert.True(t, known[Classify(p)], "path %q", p)
	}
}
