package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databolaget/databolaget/internal/core/domain"
)

func TestBrowseCmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Browse saved products interactively", browseCmd.Short)
}

func TestBrowseCmd_HelpOutput(t *testing.T) {
	setupTestWiring(t)

	out, err := execute(t, "browse", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Controls:")
	assert.Contains(t, out, "ctrl+f")
}

func TestBrowseCmd_InvalidSort(t *testing.T) {
	setupTestWiring(t)

	_, err := execute(t, "browse", "--sort", "random")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
