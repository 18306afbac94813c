package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const peopleYAML = `title: People
description: Staff directory
columns:
  - id: id
    header: ID
  - id: name
    header: Name
  - id: age
    header: Age
    align: right
  - id: city
    header: City
options:
  page_size: 2
records:
  - {id: 1, name: Bob, age: 35, city: Oslo}
  - {id: 2, name: Ann, age: 25, city: Lima}
  - {id: 3, name: Cid, age: 30, city: Oslo}
`

// setupWorkspace writes a definition and an empty settings file so tests do
// not read the developer's own settings.
func setupWorkspace(t *testing.T) (definitionPath, settingsPath string) {
	t.Helper()
	dir := t.TempDir()
	definitionPath = filepath.Join(dir, "people.yaml")
	settingsPath = filepath.Join(dir, "tabula.yaml")
	require.NoError(t, os.WriteFile(definitionPath, []byte(peopleYAML), 0o644))
	require.NoError(t, os.WriteFile(settingsPath, []byte("theme: plain\n"), 0o644))
	return definitionPath, settingsPath
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
