package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/codesweep/codesweep/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=completion.go -destination=mockreport.gen.go -package=report

// CompletionReport records the outcome of a cleanup run.
type CompletionReport struct {
	Phase                   string    `yaml:"phase"`
	Description             string    `yaml:"description"`
	ArtifactsRemoved        int       `yaml:"artifacts_removed"`
	DirectoriesRemoved      []string  `yaml:"directories_removed"`
	InfrastructurePreserved bool      `yaml:"infrastructure_preserved"`
	Timestamp               time.Time `yaml:"timestamp"`
}

// Manager interface provides completion report persistence.
type Manager interface {
	// SaveCompletion writes the completion report to the configured file.
	SaveCompletion(report CompletionReport) error
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS         fs.FS
	ReportFile string
}

type realManager struct {
	fs         fs.FS
	reportFile string
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	return &realManager{
		fs:         params.FS,
		reportFile: params.ReportFile,
	}
}

// SaveCompletion writes the completion report atomically as YAML.
func (m *realManager) SaveCompletion(report CompletionReport) error {
	if m.reportFile == "" {
		return ErrReportFileNotSet
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal completion report: %w", err)
	}

	// Create the report directory if it doesn't exist
	if err := m.fs.MkdirAll(filepath.Dir(m.reportFile), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := m.fs.WriteFileAtomic(m.reportFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write completion report: %w", err)
	}

	return nil
}
