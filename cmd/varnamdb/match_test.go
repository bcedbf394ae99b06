package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBestMatchCmd_Exists(t *testing.T) {
	cmd := getBestMatchCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "best-match", cmd.Name())
	assert.Error(t, cmd.Args(cmd, []string{"lang"}))
	assert.NoError(t, cmd.Args(cmd, []string{"lang", "input"}))
}

func TestGetSuggestCmd_Exists(t *testing.T) {
	cmd := getSuggestCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "suggest", cmd.Name())
}

func TestGetDeleteCmd_Exists(t *testing.T) {
	cmd := getDeleteCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "delete", cmd.Name())
	assert.NoError(t, cmd.Args(cmd, []string{"lang", "word"}))
}

func TestGetStatsCmd_Exists(t *testing.T) {
	cmd := getStatsCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "stats", cmd.Name())
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"lang"}))
}
