package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "cashbook", root.Use)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "editor")
	assert.Contains(t, names, "viewer")
}

func TestEditorCommandFlags(t *testing.T) {
	cmd := newEditorCommand()

	listen, err := cmd.Flags().GetString("listen")
	require.NoError(t, err)
	assert.Equal(t, ":8080", listen)

	db, err := cmd.Flags().GetString("db")
	require.NoError(t, err)
	assert.Equal(t, "cashbook.db", db)

	require.NotNil(t, cmd.Flags().Lookup("rates-url"))
	// Редактор не сопрягается сам
	assert.Nil(t, cmd.Flags().Lookup("pair"))
}

func TestViewerCommandFlags(t *testing.T) {
	cmd := newViewerCommand()

	pair, err := cmd.Flags().GetString("pair")
	require.NoError(t, err)
	assert.Empty(t, pair)

	listen, err := cmd.Flags().GetString("listen")
	require.NoError(t, err)
	assert.Equal(t, ":8081", listen)
}
