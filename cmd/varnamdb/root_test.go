package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "varnamdb", cmd.Use)
}

func TestGetRootCmd_RegistersAllSubcommands(t *testing.T) {
	cmd := getRootCmd()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"learn", "best-match", "suggest", "delete",
		"export-learned", "export-full", "import", "stats",
	} {
		assert.True(t, names[want], "expected subcommand %q to be registered", want)
	}
}

func TestGetRootCmd_HasPersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	for _, name := range []string{"config", "store-dir", "learn-mode", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "expected persistent flag %q", name)
	}
}

func TestGetRootCmd_HasBootstrapPreRun(t *testing.T) {
	cmd := getRootCmd()
	assert.NotNil(t, cmd.PersistentPreRunE)
}

func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()
	assert.NotSame(t, cmd1, cmd2)
}
