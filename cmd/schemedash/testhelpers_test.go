// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/fallback"
	"github.com/schemedash/schemedash/internal/scheme"
)

func init() {
	color.NoColor = true
}

// resetFlags restores every flag on every command to its default.
func resetFlags() {
	var visit func(c *cobra.Command)
	visit = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			visit(sub)
		}
	}
	visit(rootCmd)
}

// isolate moves the test into an empty working directory with an empty
// global config home and returns the directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))
	return dir
}

// runCmd executes the CLI with args and returns what it wrote to stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	stdout := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--quiet"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), err
}

// writeDataset stores d where a FileSource rooted at dir finds scheme id.
func writeDataset(t *testing.T, dir, id string, d scheme.Dataset) {
	t.Helper()
	path := filepath.Join(dir, "data", id+"-distribution.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

// writeDistrictData writes every scheme's sample data into dir, with a
// district breakdown on laptop.
func writeDistrictData(t *testing.T, dir string) {
	t.Helper()
	for _, id := range scheme.KnownIDs {
		d := fallback.Default().Lookup(id)
		if id == "laptop" {
			d.Districts = []scheme.DistrictValue{
				{Name: "Bhopal", Value: 3200},
				{Name: "Indore", Value: 4500},
				{Name: "Jabalpur", Value: 2100},
			}
		}
		writeDataset(t, dir, id, d)
	}
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	require.Equal(t, code, ece.ExitCode(), ece.Error())
}
