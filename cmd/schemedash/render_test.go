package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/output"
)

func TestRender_DefaultHTML(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, "render")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `<canvas id="laptop-chart">`)
	assert.Contains(t, out, `<canvas id="comparison-chart">`)
	assert.Contains(t, out, output.ChartJSURL)
}

func TestRender_JSONToFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "dash.json")

	out, err := runCmd(t, "render", "--format", "json", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "all", env.District)
	assert.Equal(t, int64(682500), env.Summary.TotalBeneficiaries)
}

func TestRender_FormatFromConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".schemedash.yaml", []byte("output_format: markdown\n"), 0o600))

	out, err := runCmd(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "# Scheme Dashboard")
}

func TestRender_Images(t *testing.T) {
	dir := isolate(t)
	outDir := filepath.Join(dir, "charts")

	_, err := runCmd(t, "render", "--format", "png", "-o", outDir)
	require.NoError(t, err)

	for _, name := range []string{"laptop-chart.png", "uniform-chart.png", "comparison-chart.png"} {
		_, statErr := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, statErr, name)
	}
	// Radar charts have no static image rendering.
	_, statErr := os.Stat(filepath.Join(outDir, "cwsn-chart.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRender_ImagesNeedOutput(t *testing.T) {
	isolate(t)
	_, err := runCmd(t, "render", "--format", "svg")
	requireExitCode(t, err, ExitInvalidArgs)
}

func TestRender_UnknownFormat(t *testing.T) {
	isolate(t)
	_, err := runCmd(t, "render", "--format", "xml")
	requireExitCode(t, err, ExitInvalidArgs)
}
