// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/district"
	"github.com/schemedash/schemedash/internal/fallback"
	"github.com/schemedash/schemedash/internal/loader"
	"github.com/schemedash/schemedash/internal/scheme"
)

// mapSource serves datasets from a map; missing ids fail.
type mapSource map[string]scheme.Dataset

func (m mapSource) Fetch(_ context.Context, id string) (scheme.Dataset, error) {
	if d, ok := m[id]; ok {
		return d.Clone(), nil
	}
	return scheme.Dataset{}, errors.New("data source returned 404")
}

type fixedHue int

func (h fixedHue) Hue() int { return int(h) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func districtSource() mapSource {
	src := mapSource{}
	for _, id := range scheme.KnownIDs {
		src[id] = fallback.Default().Lookup(id)
	}
	laptop := src["laptop"]
	laptop.Districts = []scheme.DistrictValue{
		{Name: "Bhopal", Value: 3200},
		{Name: "Indore", Value: 4500},
		{Name: "Jabalpur", Value: 2100},
		{Name: "Gwalior", Value: 1800},
		{Name: "Ujjain", Value: 900},
	}
	src["laptop"] = laptop
	return src
}

func build(t *testing.T, src loader.Source, sel string) *Dashboard {
	t.Helper()
	d, err := Build(context.Background(), Options{
		Loader:    loader.New(src, fallback.Default()),
		District:  sel,
		Presenter: &chart.Presenter{Colors: fixedHue(10)},
		Logger:    quietLogger(),
	})
	require.NoError(t, err)
	return d
}

func TestBuild_AllFallback(t *testing.T) {
	d := build(t, mapSource{}, "")

	assert.Equal(t, district.All, d.District)
	assert.False(t, d.Filtered())
	assert.Len(t, d.Mapping, len(scheme.KnownIDs))
	assert.Equal(t, int64(682500), d.Summary.TotalBeneficiaries)
	assert.Equal(t, 100, d.Summary.UtilizationPercent)
	assert.Equal(t, "", d.Summary.TopDistrict)
	assert.Nil(t, d.DistrictSummary)
	assert.Equal(t, []string{district.All}, d.Districts)
	assert.Equal(t, len(scheme.KnownIDs), d.FallbackCount())

	require.Len(t, d.Panels, len(Layout))
	for i, p := range d.Panels {
		assert.Equal(t, Layout[i].ID, p.ID)
		assert.NotNil(t, p.Spec, p.ID)
		assert.Empty(t, p.Skipped, p.ID)
	}
	assert.Empty(t, d.Skipped())
}

func TestBuild_RunIDAndTime(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	old := nowFunc
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = old }()

	d := build(t, mapSource{}, "")
	assert.Equal(t, fixed, d.GeneratedAt)
	_, err := uuid.Parse(d.RunID)
	assert.NoError(t, err)

	other := build(t, mapSource{}, "")
	assert.NotEqual(t, d.RunID, other.RunID)
}

func TestBuild_LogsCarryRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d, err := Build(context.Background(), Options{
		Loader: loader.New(mapSource{}, fallback.Default()),
		IDs:    []string{"laptop"},
		Logger: logger,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "run_id="+d.RunID)
	assert.Contains(t, out, "scheme=laptop")
}

func TestBuild_DistrictFilter(t *testing.T) {
	d := build(t, districtSource(), "Bhopal")

	assert.True(t, d.Filtered())
	assert.Equal(t, "Bhopal", d.District)
	assert.Len(t, d.Mapping, len(scheme.KnownIDs))
	require.Len(t, d.View, 1)
	assert.Equal(t, []string{"Bhopal"}, d.View["laptop"].Labels)

	// Full-mapping summary is unchanged by the filter.
	assert.Equal(t, int64(682500), d.Summary.TotalBeneficiaries)
	assert.Equal(t, "Indore", d.Summary.TopDistrict)

	require.NotNil(t, d.DistrictSummary)
	assert.Equal(t, aggregate.Summary{
		TotalBeneficiaries: 12500,
		UtilizationPercent: 25,
		TopDistrict:        "Bhopal",
		TopDistrictValue:   3200,
	}, *d.DistrictSummary)
	assert.Equal(t, *d.DistrictSummary, d.Headline())

	byID := map[string]Panel{}
	for _, p := range d.Panels {
		byID[p.ID] = p
	}
	require.NotNil(t, byID["laptop-chart"].Spec)
	assert.Equal(t, []float64{3200}, byID["laptop-chart"].Spec.Data.Datasets[0].Data)
	assert.Equal(t, SkipNotLoaded, byID["uniform-chart"].Skipped)
	assert.Nil(t, byID["uniform-chart"].Spec)

	cmp := byID[ComparisonID]
	require.NotNil(t, cmp.Spec)
	assert.Equal(t, []string{"Laptop Distribution Scheme"}, cmp.Spec.Data.Labels)
	assert.Len(t, d.Skipped(), 5)
}

func TestBuild_DistrictSelectorOptions(t *testing.T) {
	d := build(t, districtSource(), "")
	assert.Equal(t, []string{"all", "Bhopal", "Indore", "Jabalpur", "Gwalior", "Ujjain"}, d.Districts)
	assert.Equal(t, "Indore", d.Summary.TopDistrict)
	assert.Equal(t, 4500.0, d.Summary.TopDistrictValue)
	assert.Len(t, d.DistrictTotals, 5)
}

func TestBuild_UnknownDistrict(t *testing.T) {
	_, err := Build(context.Background(), Options{
		Loader:   loader.New(districtSource(), fallback.Default()),
		District: "Nowhere",
		Logger:   quietLogger(),
	})
	var ude *district.UnknownDistrictError
	require.True(t, errors.As(err, &ude))
	assert.Equal(t, "Nowhere", ude.Name)
}

func TestBuild_NoLoader(t *testing.T) {
	_, err := Build(context.Background(), Options{})
	assert.Error(t, err)
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, Options{
		Loader: loader.New(mapSource{}, fallback.Default()),
		Logger: quietLogger(),
	})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBuild_SeriesLessSchemeIsSkipped(t *testing.T) {
	src := districtSource()
	src["cwsn"] = scheme.Dataset{SchemeName: "CWSN Support Scheme", TotalBeneficiaries: 12000, Labels: []string{"a"}}

	d := build(t, src, "")
	for _, p := range d.Panels {
		if p.ID == "cwsn-chart" {
			assert.Equal(t, SkipNoSeries, p.Skipped)
			assert.Nil(t, p.Spec)
		}
	}
}

func TestBuild_CustomCapacity(t *testing.T) {
	d, err := Build(context.Background(), Options{
		Loader:   loader.New(mapSource{}, fallback.Default()),
		IDs:      []string{"laptop"},
		Capacity: 25000,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, d.Summary.UtilizationPercent)
}

func TestViews(t *testing.T) {
	d := build(t, districtSource(), "")
	views := d.Views()
	require.Len(t, views, len(d.Districts))

	assert.Equal(t, district.All, views[0].District)
	assert.Equal(t, d.Panels, views[0].Panels)
	assert.Equal(t, d.Summary, views[0].Summary)

	indore := views[2]
	assert.Equal(t, "Indore", indore.District)
	assert.Equal(t, int64(12500), indore.Summary.TotalBeneficiaries)
	assert.Equal(t, 4500.0, indore.Summary.TopDistrictValue)
	require.Len(t, indore.Panels, len(Layout))
	assert.Equal(t, []float64{4500}, indore.Panels[0].Spec.Data.Datasets[0].Data)
}

func TestLookupPanel(t *testing.T) {
	def, ok := LookupPanel("scholarship")
	require.True(t, ok)
	assert.Equal(t, chart.KindStackedBar, def.Kind)

	def, ok = LookupPanel("cwsn-chart")
	require.True(t, ok)
	assert.Equal(t, "cwsn", def.SchemeID)

	def, ok = LookupPanel("comparison")
	require.True(t, ok)
	assert.Equal(t, ComparisonID, def.ID)

	_, ok = LookupPanel("nothing")
	assert.False(t, ok)
}
