package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "welfare schemes")
	for _, sub := range []string{"load", "summary", "districts", "filter", "chart", "render", "config", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, flag := range []string{"--verbose", "--quiet", "--no-color", "--log-json", "--config", "--base-url", "--data-dir"} {
		f := rootCmd.PersistentFlags().Lookup(strings.TrimPrefix(flag, "--"))
		assert.NotNil(t, f, flag)
	}

	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "verbose", v.Name)
	q := rootCmd.PersistentFlags().ShorthandLookup("q")
	require.NotNil(t, q)
	assert.Equal(t, "quiet", q.Name)
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "schemedash dev\n", out)
}

func TestExitError(t *testing.T) {
	err := exitError(ExitInvalidArgs, "bad district %q", "Nowhere")
	assert.Equal(t, `bad district "Nowhere"`, err.Error())
	assert.Equal(t, ExitInvalidArgs, err.ExitCode())

	assert.Equal(t, "schemedash: some schemes are showing sample data", exitError(ExitPartialFallback, "").Error())
	assert.Equal(t, "schemedash: every scheme is showing sample data", exitError(ExitTotalFallback, "").Error())
	assert.Equal(t, "schemedash: error", exitError(99, "").Error())
}

func TestFallbackExitCode(t *testing.T) {
	tests := []struct {
		fallbacks, total, want int
	}{
		{0, 0, ExitOK},
		{0, 6, ExitOK},
		{1, 6, ExitPartialFallback},
		{5, 6, ExitPartialFallback},
		{6, 6, ExitTotalFallback},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackExitCode(tt.fallbacks, tt.total), "%d/%d", tt.fallbacks, tt.total)
	}
}
