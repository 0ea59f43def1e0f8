// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
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
	return scheme.Dataset{}, errors.New("not found")
}

type fixedHue int

func (h fixedHue) Hue() int { return int(h) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// districtSource serves the sample data with a district breakdown on laptop.
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

func buildDashboard(t *testing.T, src loader.Source, sel string) *dashboard.Dashboard {
	t.Helper()
	d, err := dashboard.Build(context.Background(), dashboard.Options{
		Loader:    loader.New(src, fallback.Default()),
		District:  sel,
		Presenter: &chart.Presenter{Colors: fixedHue(10)},
		Logger:    quietLogger(),
	})
	require.NoError(t, err)
	return d
}

// withFormatters swaps the registry for the duration of a test.
func withFormatters(t *testing.T, fs ...Formatter) {
	t.Helper()
	fmtMu.Lock()
	saved := fmtRegistry
	fmtMu.Unlock()

	resetFmtForTesting()
	for _, f := range fs {
		RegisterFormatter(f)
	}
	t.Cleanup(func() {
		fmtMu.Lock()
		fmtRegistry = saved
		fmtMu.Unlock()
	})
}
