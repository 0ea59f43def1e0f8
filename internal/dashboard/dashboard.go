// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package dashboard assembles loaded scheme data into summary figures and
// chart panels.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/district"
	"github.com/schemedash/schemedash/internal/loader"
	"github.com/schemedash/schemedash/internal/scheme"
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

// Skip reasons recorded on panels that are not drawn.
const (
	SkipNotLoaded = "no data for this scheme"
	SkipNoSeries  = "no chart series"
	SkipNoTotals  = "no scheme totals"
)

// Options configures a dashboard build.
type Options struct {
	// Loader fetches the datasets. Required.
	Loader *loader.Loader

	// IDs are the schemes to load. scheme.KnownIDs is used when empty.
	IDs []string

	// District narrows the view. Empty means district.All.
	District string

	// Capacity is the utilization reference; aggregate.DefaultCapacity when
	// not positive.
	Capacity int64

	// Presenter draws the chart specs. A zero Presenter is used when nil.
	Presenter *chart.Presenter

	// Logger receives build diagnostics. slog.Default() is used when nil.
	Logger *slog.Logger
}

// Panel is one placed chart. Spec is nil when the panel was skipped.
type Panel struct {
	ID       string      `json:"id"`
	SchemeID string      `json:"schemeId,omitempty"`
	Kind     chart.Kind  `json:"kind"`
	Title    string      `json:"title"`
	Spec     *chart.Spec `json:"spec,omitempty"`
	Skipped  string      `json:"skipped,omitempty"`
}

// Dashboard is the assembled result of one build.
type Dashboard struct {
	RunID       string
	GeneratedAt time.Time

	// District is the selected district, district.All when unfiltered.
	District string

	// Mapping holds every loaded dataset. View is Mapping narrowed to
	// District.
	Mapping scheme.Mapping
	View    scheme.Mapping

	// Summary covers the full mapping. DistrictSummary covers View and is
	// set only when a district is selected.
	Summary         aggregate.Summary
	DistrictSummary *aggregate.Summary

	// Districts are the selector options: district.All, then every district
	// in first-seen order.
	Districts      []string
	DistrictTotals []aggregate.DistrictTotal

	Panels []Panel
	Loads  []loader.Result

	capacity  int64
	presenter *chart.Presenter
	logger    *slog.Logger
}

// Build loads every scheme, computes the summary, applies the district
// filter and lays out the charts. The only errors are a missing loader, a
// cancelled ctx and an unknown district.
func Build(ctx context.Context, opts Options) (*Dashboard, error) {
	if opts.Loader == nil {
		return nil, errors.New("dashboard: no loader configured")
	}
	ids := opts.IDs
	if len(ids) == 0 {
		ids = scheme.KnownIDs
	}
	sel := opts.District
	if sel == "" {
		sel = district.All
	}
	presenter := opts.Presenter
	if presenter == nil {
		presenter = &chart.Presenter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	l := *opts.Loader
	l.Logger = logger
	report, err := l.LoadAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	if err := district.Validate(sel, report.Mapping); err != nil {
		return nil, fmt.Errorf("selecting district: %w", err)
	}

	d := &Dashboard{
		RunID:          runID,
		GeneratedAt:    nowFunc(),
		District:       sel,
		Mapping:        report.Mapping,
		Summary:        aggregate.ComputeSummaryWithCapacity(report.Mapping, opts.Capacity),
		Districts:      append([]string{district.All}, district.Names(report.Mapping)...),
		DistrictTotals: aggregate.DistrictTotals(report.Mapping),
		Loads:          report.Results,
		capacity:       opts.Capacity,
		presenter:      presenter,
		logger:         logger,
	}

	d.View = district.Filter(sel, report.Mapping)
	if sel != district.All {
		s := aggregate.ComputeSummaryWithCapacity(d.View, opts.Capacity)
		d.DistrictSummary = &s
	}
	d.Panels = d.panels(d.View)

	logger.Info("dashboard built",
		"district", sel,
		"schemes", len(report.Mapping),
		"fallbacks", report.FallbackCount(),
		"panels", len(d.Panels),
		"skipped", len(d.Skipped()))
	return d, nil
}

// Filtered reports whether a district is selected.
func (d *Dashboard) Filtered() bool {
	return d.District != district.All
}

// Headline returns the summary for the current view.
func (d *Dashboard) Headline() aggregate.Summary {
	if d.DistrictSummary != nil {
		return *d.DistrictSummary
	}
	return d.Summary
}

// Skipped returns the panels that were not drawn.
func (d *Dashboard) Skipped() []Panel {
	var out []Panel
	for _, p := range d.Panels {
		if p.Spec == nil {
			out = append(out, p)
		}
	}
	return out
}

// FallbackCount returns how many schemes were served from the fallback table.
func (d *Dashboard) FallbackCount() int {
	n := 0
	for _, r := range d.Loads {
		if r.Origin == loader.OriginFallback {
			n++
		}
	}
	return n
}

func (d *Dashboard) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

// panels lays out every chart for m.
func (d *Dashboard) panels(m scheme.Mapping) []Panel {
	out := make([]Panel, 0, len(Layout))
	for _, def := range Layout {
		p := Panel{ID: def.ID, SchemeID: def.SchemeID, Kind: def.Kind, Title: def.Title}

		var spec chart.Spec
		var err error
		if def.Kind == chart.KindComparison {
			spec, err = d.presenter.Comparison(m)
		} else {
			ds, ok := m[def.SchemeID]
			if !ok {
				p.Skipped = SkipNotLoaded
				out = append(out, p)
				continue
			}
			spec, err = d.presenter.Spec(def.Kind, ds, def.Title)
		}

		switch {
		case err == nil:
			p.Spec = &spec
		case errors.Is(err, chart.ErrNoSeries) && def.Kind == chart.KindComparison:
			p.Skipped = SkipNoTotals
		case errors.Is(err, chart.ErrNoSeries):
			p.Skipped = SkipNoSeries
		default:
			p.Skipped = err.Error()
		}
		if p.Skipped != "" {
			d.log().Debug("panel skipped", "panel", p.ID, "reason", p.Skipped)
		}
		out = append(out, p)
	}
	return out
}
