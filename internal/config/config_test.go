package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_YAMLRoundTrip(t *testing.T) {
	seed := uint64(42)
	original := &Config{
		Source: SourceConfig{
			BaseURL:     "https://data.example.org",
			PathPattern: "api/{id}.json",
			Timeout:     "5s",
			CacheTTL:    "10m",
		},
		Concurrency:  4,
		FallbackFile: "samples.toml",
		Capacity:     1_000_000,
		District:     "Bhopal",
		OutputFormat: "html",
		ColorSeed:    &seed,
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	decoded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestConfig_ColorSeedNilDistinct(t *testing.T) {
	cfg, err := Parse([]byte("color_seed: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.ColorSeed)
	assert.Equal(t, uint64(0), *cfg.ColorSeed)

	cfg, err = Parse([]byte("district: Indore\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.ColorSeed)
}

func TestConfig_OmitEmptyFields(t *testing.T) {
	data, err := yaml.Marshal(&Config{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestSourceConfig_Durations(t *testing.T) {
	src := SourceConfig{Timeout: "2s", CacheTTL: "1h"}

	d, err := src.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	d, err = src.CacheTTLDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)

	d, err = SourceConfig{}.TimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestSourceConfig_BadDurations(t *testing.T) {
	_, err := SourceConfig{Timeout: "soon"}.TimeoutDuration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.timeout")

	_, err = SourceConfig{CacheTTL: "-1m"}.CacheTTLDuration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}
