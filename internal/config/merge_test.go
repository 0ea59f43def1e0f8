package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_UpperWins(t *testing.T) {
	lower := &Config{Concurrency: 2, District: "Bhopal", OutputFormat: "json", Capacity: 100}
	upper := &Config{District: "Indore", Capacity: 200}

	got := Merge(lower, upper)
	assert.Equal(t, 2, got.Concurrency)
	assert.Equal(t, "Indore", got.District)
	assert.Equal(t, "json", got.OutputFormat)
	assert.Equal(t, int64(200), got.Capacity)
}

func TestMerge_ZeroUpperFallsThrough(t *testing.T) {
	lower := &Config{Source: SourceConfig{BaseURL: "https://a.example", Timeout: "5s"}}
	got := Merge(lower, &Config{})
	assert.Equal(t, lower, got)
	assert.NotSame(t, lower, got)
}

func TestMerge_NilLayers(t *testing.T) {
	assert.Equal(t, &Config{}, Merge(nil, nil))
	assert.Equal(t, &Config{District: "x"}, Merge(nil, &Config{District: "x"}))
	assert.Equal(t, &Config{District: "x"}, Merge(&Config{District: "x"}, nil))
}

func TestMerge_SourceKindReplaced(t *testing.T) {
	got := Merge(&Config{Source: SourceConfig{Dir: "./data"}}, &Config{Source: SourceConfig{BaseURL: "https://b.example"}})
	assert.Equal(t, "https://b.example", got.Source.BaseURL)
	assert.Empty(t, got.Source.Dir)

	got = Merge(&Config{Source: SourceConfig{BaseURL: "https://b.example"}}, &Config{Source: SourceConfig{Dir: "./data"}})
	assert.Equal(t, "./data", got.Source.Dir)
	assert.Empty(t, got.Source.BaseURL)
}

func TestMerge_ColorSeedCopied(t *testing.T) {
	seed := uint64(7)
	upper := &Config{ColorSeed: &seed}
	got := Merge(&Config{}, upper)

	seed = 9
	if assert.NotNil(t, got.ColorSeed) {
		assert.Equal(t, uint64(7), *got.ColorSeed)
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	lower := &Config{District: "Bhopal"}
	upper := &Config{District: "Indore"}
	Merge(lower, upper)
	assert.Equal(t, "Bhopal", lower.District)
	assert.Equal(t, "Indore", upper.District)
}
