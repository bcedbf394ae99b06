package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExportLearnedCmd_Exists(t *testing.T) {
	cmd := getExportLearnedCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "export-learned", cmd.Name())

	outFlag := cmd.Flags().Lookup("out")
	require.NotNil(t, outFlag)
	assert.Equal(t, ".", outFlag.DefValue)

	wpfFlag := cmd.Flags().Lookup("words-per-file")
	require.NotNil(t, wpfFlag)
	assert.Equal(t, "0", wpfFlag.DefValue)
}

func TestGetExportFullCmd_Exists(t *testing.T) {
	cmd := getExportFullCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "export-full", cmd.Name())
}

func TestGetImportCmd_RequiresTwoArgs(t *testing.T) {
	cmd := getImportCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "import", cmd.Name())
	assert.Error(t, cmd.Args(cmd, []string{"lang"}))
	assert.NoError(t, cmd.Args(cmd, []string{"lang", "file.txt"}))
}
