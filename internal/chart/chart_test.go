// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/fallback"
	"github.com/schemedash/schemedash/internal/scheme"
)

// fixedHue is a ColorSource that always returns the same hue.
type fixedHue int

func (h fixedHue) Hue() int { return int(h) }

func presenter() *Presenter {
	return &Presenter{Colors: fixedHue(200)}
}

func dataset(id string) scheme.Dataset {
	return fallback.Default().Lookup(id)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Stacked-Bar ")
	require.NoError(t, err)
	assert.Equal(t, KindStackedBar, got)

	_, err = ParseKind("scatter")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Contains(t, err.Error(), `"scatter"`)
}

func TestSpec_Bar(t *testing.T) {
	ds := dataset("laptop")
	got, err := presenter().Spec(KindBar, ds, "Students Benefited")
	require.NoError(t, err)

	assert.Equal(t, "bar", got.Type)
	assert.Equal(t, ds.Labels, got.Data.Labels)
	require.Len(t, got.Data.Datasets, 1)

	s := got.Data.Datasets[0]
	assert.Equal(t, "Students Benefited", s.Label)
	assert.Equal(t, []float64{3200, 4500, 2100, 1800, 900}, s.Data)
	assert.Equal(t, Palette[:5], s.BackgroundColor)
	assert.Equal(t, "#fff", s.BorderColor)
	assert.Equal(t, 1, s.BorderWidth)

	require.NotNil(t, got.Options.Scales)
	assert.Equal(t, 0, *got.Options.Scales.X.Ticks.MaxRotation)
	assert.Equal(t, "compact", got.Options.Scales.Y.Ticks.Format)
	assert.False(t, *got.Options.Scales.X.Grid.Display)
	assert.Equal(t, "Students Benefited", got.Options.Plugins.Title.Text)
}

func TestSpec_BarKeepsSeriesColors(t *testing.T) {
	ds := scheme.Dataset{
		Labels:   []string{"a", "b"},
		Datasets: []scheme.Series{{Label: "x", Data: []float64{1, 2}, BackgroundColor: "#123456", BorderColor: "#000"}},
	}
	got, err := presenter().Spec(KindBar, ds, "t")
	require.NoError(t, err)
	assert.Equal(t, "#123456", got.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, "#000", got.Data.Datasets[0].BorderColor)
}

func TestSpec_RotatesManyLabels(t *testing.T) {
	ds := scheme.Dataset{
		Labels:   []string{"a", "b", "c", "d", "e", "f"},
		Datasets: []scheme.Series{{Label: "x", Data: []float64{1, 2, 3, 4, 5, 6}}},
	}
	for _, k := range []Kind{KindBar, KindLine, KindStackedBar} {
		got, err := presenter().Spec(k, ds, "t")
		require.NoError(t, err)
		assert.Equal(t, 45, *got.Options.Scales.X.Ticks.MaxRotation, k)
		assert.Equal(t, 45, *got.Options.Scales.X.Ticks.MinRotation, k)
	}
}

func TestSpec_PieAndDoughnutFlattenFirstSeries(t *testing.T) {
	ds := dataset("scholarship")
	for _, k := range []Kind{KindPie, KindDoughnut} {
		t.Run(string(k), func(t *testing.T) {
			got, err := presenter().Spec(k, ds, "Scholarship Amount (₹)")
			require.NoError(t, err)
			assert.Equal(t, string(k), got.Type)
			require.Len(t, got.Data.Datasets, 1)
			s := got.Data.Datasets[0]
			assert.Equal(t, "Scholarship Amount (₹)", s.Label)
			assert.Equal(t, []float64{45000, 50000, 30000, 20000}, s.Data)
			assert.Equal(t, Palette[:4], s.BackgroundColor)
			assert.Nil(t, got.Options.Scales)
		})
	}
}

func TestSpec_Line(t *testing.T) {
	got, err := presenter().Spec(KindLine, dataset("cycle"), "Cycles Distributed")
	require.NoError(t, err)
	assert.Equal(t, "line", got.Type)
	s := got.Data.Datasets[0]
	assert.Equal(t, "rgba(75, 192, 192, 0.2)", s.BackgroundColor)
	assert.Equal(t, "rgba(75, 192, 192, 1)", s.BorderColor)
	assert.Equal(t, 2, s.BorderWidth)
	assert.True(t, s.Fill)
	assert.Equal(t, 0.4, s.Tension)
}

func TestSpec_StackedBar(t *testing.T) {
	got, err := presenter().Spec(KindStackedBar, dataset("scholarship"), "Scholarship Amount (₹)")
	require.NoError(t, err)
	assert.Equal(t, "bar", got.Type)
	require.Len(t, got.Data.Datasets, 2)
	assert.Equal(t, Palette[0], got.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, Palette[1], got.Data.Datasets[1].BackgroundColor)
	assert.True(t, got.Options.Scales.X.Stacked)
	assert.True(t, got.Options.Scales.Y.Stacked)
	assert.Equal(t, "compact", got.Options.Scales.Y.Ticks.Format)
}

func TestSpec_Radar(t *testing.T) {
	got, err := presenter().Spec(KindRadar, dataset("cwsn"), "Support Provided")
	require.NoError(t, err)
	assert.Equal(t, "radar", got.Type)
	s := got.Data.Datasets[0]
	assert.Equal(t, "rgba(75, 192, 192, 1)", s.PointBackgroundColor)
	assert.Equal(t, 2, s.BorderWidth)
	assert.Nil(t, got.Options.Scales)
}

func TestSpec_NoSeries(t *testing.T) {
	ds := scheme.Dataset{Labels: []string{"Bhopal"}}
	for _, k := range []Kind{KindBar, KindPie, KindLine, KindStackedBar, KindDoughnut, KindRadar} {
		_, err := presenter().Spec(k, ds, "t")
		assert.True(t, errors.Is(err, ErrNoSeries), k)
	}
}

func TestSpec_RejectsComparisonAndUnknown(t *testing.T) {
	_, err := presenter().Spec(KindComparison, dataset("laptop"), "t")
	assert.Error(t, err)
	_, err = presenter().Spec(Kind("scatter"), dataset("laptop"), "t")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestSpec_DoesNotAliasInput(t *testing.T) {
	ds := dataset("laptop")
	before := ds.Clone()

	got, err := presenter().Spec(KindBar, ds, "t")
	require.NoError(t, err)
	got.Data.Labels[0] = "changed"
	got.Data.Datasets[0].Data[0] = -1

	assert.Equal(t, before, ds)
}

func TestSpec_GeneratedColorsBeyondPalette(t *testing.T) {
	labels := make([]string, 12)
	data := make([]float64, 12)
	for i := range labels {
		labels[i] = string(rune('a' + i))
		data[i] = float64(i)
	}
	ds := scheme.Dataset{Labels: labels, Datasets: []scheme.Series{{Label: "x", Data: data}}}

	got, err := presenter().Spec(KindPie, ds, "t")
	require.NoError(t, err)
	colors := got.Data.Datasets[0].Colors()
	require.Len(t, colors, 12)
	assert.Equal(t, Palette, colors[:10])
	assert.Equal(t, "hsl(200, 70%, 60%)", colors[10])
	assert.Equal(t, "hsl(200, 70%, 60%)", colors[11])
}

func TestComparison(t *testing.T) {
	m := fallback.Default().Mapping()
	m["cwsn"] = scheme.Dataset{SchemeName: "CWSN Support Scheme"} // no total

	got, err := presenter().Comparison(m)
	require.NoError(t, err)

	assert.Equal(t, "bar", got.Type)
	assert.Equal(t, ComparisonTitle, got.Options.Plugins.Title.Text)
	assert.Equal(t, []string{
		"Laptop Distribution Scheme",
		"Uniform Distribution Scheme",
		"Cycle Distribution Scheme",
		"Scholarship Scheme",
		"Sanitary Pad Distribution Scheme",
		"CWSN Support Scheme",
	}, got.Data.Labels)

	require.Len(t, got.Data.Datasets, 5)
	uniform := got.Data.Datasets[1]
	assert.Equal(t, "Uniform Distribution Scheme", uniform.Label)
	assert.Equal(t, []float64{0, 245000, 0, 0, 0, 0}, uniform.Data)
	assert.Equal(t, Palette[1], uniform.BackgroundColor)
	assert.True(t, got.Options.Scales.X.Stacked)
}

func TestComparison_NameFallsBackToID(t *testing.T) {
	got, err := presenter().Comparison(scheme.Mapping{"custom": {TotalBeneficiaries: 5}})
	require.NoError(t, err)
	assert.Equal(t, []string{"custom"}, got.Data.Labels)
}

func TestComparison_NoTotals(t *testing.T) {
	_, err := presenter().Comparison(scheme.Mapping{"laptop": {}})
	assert.True(t, errors.Is(err, ErrNoSeries))
	_, err = presenter().Comparison(nil)
	assert.True(t, errors.Is(err, ErrNoSeries))
}

func TestSpec_JSONShape(t *testing.T) {
	got, err := presenter().Spec(KindBar, dataset("laptop"), "Students Benefited")
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "bar", doc["type"])

	opts := doc["options"].(map[string]any)
	assert.Equal(t, false, opts["maintainAspectRatio"])
	plugins := opts["plugins"].(map[string]any)
	legend := plugins["legend"].(map[string]any)
	assert.Equal(t, "bottom", legend["position"])
	tooltip := plugins["tooltip"].(map[string]any)
	assert.Equal(t, "index", tooltip["mode"])
	assert.Equal(t, 1000.0, opts["animation"].(map[string]any)["duration"])
}

func TestZeroPresenterUsesDefaultColors(t *testing.T) {
	var p Presenter
	_, err := p.Spec(KindBar, dataset("laptop"), "t")
	require.NoError(t, err)
}
