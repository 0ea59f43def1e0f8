package report

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/fallback"
	"github.com/schemedash/schemedash/internal/loader"
	"github.com/schemedash/schemedash/internal/scheme"
)

func init() {
	color.NoColor = true
}

type mapSource map[string]scheme.Dataset

func (m mapSource) Fetch(_ context.Context, id string) (scheme.Dataset, error) {
	if d, ok := m[id]; ok {
		return d.Clone(), nil
	}
	return scheme.Dataset{}, errors.New("GET https://user:pw@example.org/laptop.json: 404")
}

type fixedHue int

func (h fixedHue) Hue() int { return int(h) }

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
		Logger:    slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	require.NoError(t, err)
	return d
}

// restoreSections resets the registry and re-registers all init-registered sections.
func restoreSections() {
	resetForTesting()
	Register(&summarySection{})
	Register(&schemesSection{})
	Register(&districtsSection{})
	Register(&loadsSection{})
}
