package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func writeSheet(t *testing.T, dir, name, doc string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func newImportApp(flags *Flags, out *bytes.Buffer) *cli.Command {
	app := &cli.Command{Name: "gridsheet", Writer: out}
	return NewImportCmd(flags).Register(app)
}

func TestImportCmd_JSONSummary(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.json", `{"cells":[{"row":1,"col":1,"value":"42"},{"row":2,"col":1,"value":"x"}]}`)
	writeSheet(t, dir, "b.json", `{"cells":[{"row":5000000,"col":1,"value":"oob"}],"rows":{"5":100}}`)

	var out bytes.Buffer
	app := newImportApp(&Flags{}, &out)

	err := app.Run(context.Background(), []string{"gridsheet", "import", "--json", filepath.Join(dir, "*.json")})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"files": 2`)
	assert.Contains(t, out.String(), `"cells": 2`)
	assert.Contains(t, out.String(), `"row_sizes": 1`)
	assert.Contains(t, out.String(), `"skipped": 1`)
}

func TestImportCmd_HumanSummary(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.json", `{"cells":[{"row":1,"col":1,"value":"42"}]}`)

	var out bytes.Buffer
	app := newImportApp(&Flags{}, &out)

	err := app.Run(context.Background(), []string{"gridsheet", "import", filepath.Join(dir, "a.json")})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "files         1")
	assert.Contains(t, out.String(), "cells         1")
	assert.NotContains(t, out.String(), "skipped")
}

func TestImportCmd_FileFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, "a.json", `{"cells":[{"row":1,"col":1,"value":"42"}],"columns":{"2":260}}`)

	var out bytes.Buffer
	app := newImportApp(&Flags{}, &out)

	err := app.Run(context.Background(), []string{"gridsheet", "import", "--json", "-f", path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"cells": 1`)
	assert.Contains(t, out.String(), `"col_sizes": 1`)
}

func TestImportCmd_EmptyGlobFails(t *testing.T) {
	var out bytes.Buffer
	app := newImportApp(&Flags{}, &out)

	err := app.Run(context.Background(), []string{"gridsheet", "import", filepath.Join(t.TempDir(), "*.json")})
	assert.Error(t, err)
}
