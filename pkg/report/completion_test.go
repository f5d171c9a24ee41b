//go:build unit

package report

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/codesweep/codesweep/pkg/fs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestManager_SaveCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)

	manager := NewManager(NewManagerParams{
		FS:         mockFS,
		ReportFile: "/home/user/.codesweep/report.yaml",
	})

	completion := CompletionReport{
		Phase:                   "cleanup",
		Description:             "remove stale screens",
		ArtifactsRemoved:        3,
		DirectoriesRemoved:      []string{"src/screens/old"},
		InfrastructurePreserved: true,
		Timestamp:               time.Date(2025, 9, 25, 12, 0, 0, 0, time.UTC),
	}
	expectedData, err := yaml.Marshal(completion)
	assert.NoError(t, err)

	// Mock expectations
	mockFS.EXPECT().MkdirAll("/home/user/.codesweep", os.FileMode(0755)).Return(nil)
	mockFS.EXPECT().WriteFileAtomic("/home/user/.codesweep/report.yaml", expectedData, os.FileMode(0644)).Return(nil)

	// Execute
	err = manager.SaveCompletion(completion)

	// Assert
	assert.NoError(t, err)
}

func TestManager_SaveCompletion_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)

	manager := NewManager(NewManagerParams{
		FS:         mockFS,
		ReportFile: "/home/user/.codesweep/report.yaml",
	})

	mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	err := manager.SaveCompletion(CompletionReport{Phase: "cleanup"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write completion report")
}

func TestManager_SaveCompletion_NoReportFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := NewManager(NewManagerParams{
		FS:         fs.NewMockFS(ctrl),
		ReportFile: "",
	})

	err := manager.SaveCompletion(CompletionReport{Phase: "cleanup"})
	assert.ErrorIs(t, err, ErrReportFileNotSet)
}
