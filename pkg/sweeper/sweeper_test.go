//go:build unit

package sweeper

import (
	"testing"

	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/dependencies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewSweeper_MissingConfig(t *testing.T) {
	// The default container carries no config manager.
	_, err := NewSweeper(NewSweeperParams{})

	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestNewSweeper_ValidDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := dependencies.New().WithConfig(config.NewMockManager(ctrl))

	s, err := NewSweeper(NewSweeperParams{Dependencies: deps})

	require.NoError(t, err)
	assert.NotNil(t, s)
}
