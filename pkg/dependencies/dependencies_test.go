//go:build unit

package dependencies

import (
	"testing"

	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// TestDependencies_Validate_MissingFS tests validation failure when FS is missing
func TestDependencies_Validate_MissingFS(t *testing.T) {
	deps := New().WithConfig(config.NewManager("config.yaml"))
	deps.FS = nil // Override the default

	err := deps.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrFSMissing)
}

// TestDependencies_Validate_MissingConfig tests validation failure when Config is missing
func TestDependencies_Validate_MissingConfig(t *testing.T) {
	deps := New()

	err := deps.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigMissing)
}

// TestDependencies_Validate_AllMissing tests validation failure when all dependencies are missing
func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{} // All fields are nil

	err := deps.Validate()
	assert.Error(t, err)
	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, err, ErrFSMissing)
}

// TestDependencies_New_Defaults tests that New() creates a Dependencies instance with proper defaults
func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	// Check that defaults are set
	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)

	// Config requires a path and is left nil
	assert.Nil(t, deps.Config)
}

// TestDependencies_Chaining tests the fluent configuration API
func TestDependencies_Chaining(t *testing.T) {
	log := logger.NewDefaultLogger()
	deps := New().
		WithConfig(config.NewManager("config.yaml")).
		WithLogger(log)

	assert.NoError(t, deps.Validate())
	assert.Equal(t, log, deps.Logger)
}
