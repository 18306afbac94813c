package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-17"

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Tabula 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2026-10-17")
}

func TestRootCommandPrintsHelp(t *testing.T) {
	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	require.Contains(t, stdout, "render")
	require.Contains(t, stdout, "browse")
}
