package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	assert.Equal(t, "generate", generateCmd.Use)
	assert.NotNil(t, generateCmd.RunE)
}

func TestGenerateCommand_Flags(t *testing.T) {
	flags := generateCmd.Flags()

	entity := flags.Lookup("entity")
	require.NotNil(t, entity)
	assert.Equal(t, "e", entity.Shorthand)

	count := flags.Lookup("count")
	require.NotNil(t, count)
	assert.Equal(t, "n", count.Shorthand)
	assert.Equal(t, "10", count.DefValue)

	seed := flags.Lookup("seed")
	require.NotNil(t, seed)
	assert.Equal(t, "s", seed.Shorthand)

	format := flags.Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "f", format.Shorthand)
	assert.Equal(t, "json", format.DefValue)

	output := flags.Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestGenerateCommand_EntityRequired(t *testing.T) {
	annotations := generateCmd.Flags().Lookup("entity").Annotations
	_, required := annotations[cobra.BashCompOneRequiredFlag]
	assert.True(t, required, "entity flag should be required")
}
