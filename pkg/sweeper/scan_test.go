//go:build unit

package sweeper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codesweep/codesweep/pkg/category"
	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/dependencies"
	"github.com/codesweep/codesweep/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(rootDir string) config.Config {
	return config.Config{
		RootDir:         rootDir,
		Extensions:      []string{".ts", ".tsx"},
		ExcludePatterns: []string{"index.ts", ".test.ts"},
		KnownUsed:       []string{"App.tsx"},
		Threshold:       0,
		FailurePolicy:   config.PolicyAssumeUsed,
		ReportFile:      filepath.Join(rootDir, "report.yaml"),
	}
}

// newTestSweeper builds a Sweeper over the real filesystem with a mocked
// config manager serving cfg.
func newTestSweeper(t *testing.T, cfg config.Config) Sweeper {
	t.Helper()

	ctrl := gomock.NewController(t)
	configMock := config.NewMockManager(ctrl)
	configMock.EXPECT().GetConfigWithFallback().Return(cfg, nil).AnyTimes()

	deps := dependencies.New().
		WithFS(fs.NewFS()).
		WithConfig(configMock)

	s, err := NewSweeper(NewSweeperParams{Dependencies: deps})
	require.NoError(t, err)
	return s
}

// writeFiles creates files with the given contents under root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for p, content := range files {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func TestScan_FlagsUnreferencedFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	// Used.ts is referenced by exactly one line; that single external
	// reference is enough to keep it out of the report.
	writeFiles(t, root, map[string]string{
		"services/Orphan.ts":  "export const orphan = 1;\n",
		"services/Used.ts":    "export const used = 1;\n",
		"components/index.ts": "export * from './Button';\n",
		"App.tsx":             "import { used } from './services/Used';\n",
	})

	s := newTestSweeper(t, testConfig(root))

	result, err := s.Scan()

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Equal(t,
		[]string{filepath.Join(root, "services", "Orphan.ts")},
		result.Files(category.Services))

	// Scanning an unmodified tree again yields the same result
	again, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, result.Files(category.Services), again.Files(category.Services))
	assert.Equal(t, result.Total(), again.Total())
}

func TestScan_StrictRequiresImportReference(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	// Helper is mentioned by other files but never actually imported.
	writeFiles(t, root, map[string]string{
		"utils/Helper.ts": "export const helper = 1;\n",
		"App.tsx": "// Helper is legacy\n" +
			"// see Helper for details\n",
	})

	s := newTestSweeper(t, testConfig(root))

	relaxed, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, 0, relaxed.Total())

	strict, err := s.Scan(ScanOpts{Strict: true})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{filepath.Join(root, "utils", "Helper.ts")},
		strict.Files(category.Utils))
}

func TestScan_StrictKeepsImportedFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	writeFiles(t, root, map[string]string{
		"services/Used.ts": "export const used = 1;\n",
		"App.tsx":          "import { used } from './services/Used';\n",
	})

	s := newTestSweeper(t, testConfig(root))

	result, err := s.Scan(ScanOpts{Strict: true})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
}

func TestScan_ThresholdOverride(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	writeFiles(t, root, map[string]string{
		"stores/Session.ts": "export const session = 1;\n",
		"App.tsx": "import { session } from './stores/Session';\n" +
			"console.log(Session);\n",
	})

	s := newTestSweeper(t, testConfig(root))

	// Two external references clear the default threshold.
	relaxed, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, 0, relaxed.Total())

	// Raising the threshold flags the same file.
	two := 2
	raised, err := s.Scan(ScanOpts{Threshold: &two})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{filepath.Join(root, "stores", "Session.ts")},
		raised.Files(category.Stores))
}

func TestScan_ZeroValueOptsKeepConfiguredThreshold(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	writeFiles(t, root, map[string]string{
		"services/Tolerated.ts": "export const tolerated = 1;\n",
		"App.tsx":               "import { tolerated } from './services/Tolerated';\n",
	})

	cfg := testConfig(root)
	cfg.Threshold = 1
	s := newTestSweeper(t, cfg)

	// An opts struct with an unset threshold must not clobber the
	// configured value with zero.
	result, err := s.Scan(ScanOpts{RootDir: root})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{filepath.Join(root, "services", "Tolerated.ts")},
		result.Files(category.Services))
}

func TestScan_RootDirOverride(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	writeFiles(t, root, map[string]string{
		"services/Orphan.ts": "export const orphan = 1;\n",
	})

	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	s := newTestSweeper(t, cfg)

	result, err := s.Scan(ScanOpts{RootDir: root})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
}

func TestScan_MissingRootYieldsEmptyReport(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	s := newTestSweeper(t, cfg)

	result, err := s.Scan()

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
}

func TestScan_FailurePolicyAssumeUsed(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	// A file named just ".ts" has no base name to search for, so its
	// evaluation fails and the policy decides its fate.
	writeFiles(t, root, map[string]string{
		"services/.ts": "export const broken = 1;\n",
	})

	s := newTestSweeper(t, testConfig(root))

	result, err := s.Scan()

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
}

func TestScan_FailurePolicyAssumeUnused(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	writeFiles(t, root, map[string]string{
		"services/.ts": "export const broken = 1;\n",
	})

	cfg := testConfig(root)
	cfg.FailurePolicy = config.PolicyAssumeUnused
	s := newTestSweeper(t, cfg)

	result, err := s.Scan()

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Equal(t,
		[]string{filepath.Join(root, "services", ".ts")},
		result.Files(category.Services))
}

func TestBaseName(t *testing.T) {
	extensions := []string{".ts", ".tsx"}

	assert.Equal(t, "Orphan", baseName("src/services/Orphan.ts", extensions))
	assert.Equal(t, "App", baseName("src/App.tsx", extensions))
	assert.Equal(t, "notes", baseName("src/notes.md", extensions))
}
