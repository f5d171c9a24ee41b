//go:build unit

package refcount

import (
	"errors"
	"testing"

	"github.com/codesweep/codesweep/pkg/fs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCounterWithTree(t *testing.T, tree map[string]string) Counter {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockFS := fs.NewMockFS(ctrl)
	var files []string
	for path, content := range tree {
		files = append(files, path)
		mockFS.EXPECT().ReadFile(path).Return([]byte(content), nil)
	}

	return NewCounter(NewCounterParams{FS: mockFS, SearchFiles: files})
}

func TestCounter_CountReferences(t *testing.T) {
	counter := newCounterWithTree(t, map[string]string{
		"src/services/Orphan.ts": "export class Orphan {}\n",
		"src/services/Used.ts":   "export class Used {}\n",
		"src/App.ts":             "import { Used } from './services/Used';\nconst u = new Used();\n",
	})

	// Used: two external lines in App.ts mention it
	count, err := counter.CountReferences("Used", "src/services/Used.ts")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	// Orphan: its own declaration is excluded, nothing else matches
	count, err = counter.CountReferences("Orphan", "src/services/Orphan.ts")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCounter_CountReferences_WordBoundary(t *testing.T) {
	counter := newCounterWithTree(t, map[string]string{
		"src/types/User.ts":        "export interface User {}\n",
		"src/types/UserProfile.ts": "export interface UserProfile {}\n",
		"src/App.ts":               "import { UserProfile } from './types/UserProfile';\n",
	})

	// "User" inside "UserProfile" must not count as a reference to User.ts
	count, err := counter.CountReferences("User", "src/types/User.ts")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = counter.CountReferences("UserProfile", "src/types/UserProfile.ts")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCounter_HasImportReference(t *testing.T) {
	counter := newCounterWithTree(t, map[string]string{
		"src/services/Sync.ts":  "export const sync = () => {};\n",
		"src/services/Stale.ts": "export const stale = () => {};\n",
		"src/App.ts":            "import { sync } from './services/Sync';\n// Stale is mentioned here but never imported\n",
	})

	found, err := counter.HasImportReference("Sync", "src/services/Sync.ts")
	assert.NoError(t, err)
	assert.True(t, found)

	// A plain text mention is not an import
	found, err = counter.HasImportReference("Stale", "src/services/Stale.ts")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCounter_HasImportReference_QuotedVariants(t *testing.T) {
	counter := newCounterWithTree(t, map[string]string{
		"src/a.ts": `import Timer from "Timer";` + "\n",
		"src/b.ts": "import { useTimer } from './hooks/Timer';\n",
	})

	found, err := counter.HasImportReference("Timer", "src/hooks/Timer.ts")
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestCounter_ReadFailuresAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fs.NewMockFS(ctrl)

	mockFS.EXPECT().ReadFile("src/ok.ts").Return([]byte("import { Thing } from './Thing';\n"), nil)
	mockFS.EXPECT().ReadFile("src/broken.ts").Return(nil, errors.New("permission denied"))

	counter := NewCounter(NewCounterParams{
		FS:          mockFS,
		SearchFiles: []string{"src/ok.ts", "src/broken.ts"},
	})

	count, err := counter.CountReferences("Thing", "src/Thing.ts")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, []string{"src/broken.ts"}, counter.Failures())
}

func TestCounter_EmptyBaseName(t *testing.T) {
	counter := NewCounter(NewCounterParams{FS: fs.NewFS(), SearchFiles: nil})

	_, err := counter.CountReferences("", "src/a.ts")
	assert.ErrorIs(t, err, ErrBaseNameEmpty)

	_, err = counter.HasImportReference("", "src/a.ts")
	assert.ErrorIs(t, err, ErrBaseNameEmpty)
}
