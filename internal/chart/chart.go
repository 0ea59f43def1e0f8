// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package chart turns scheme datasets into declarative chart descriptions.
//
// The Presenter performs no I/O and never modifies its inputs: every Spec
// owns its labels and data.
package chart

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/schemedash/schemedash/internal/scheme"
)

// Kind names a chart layout.
type Kind string

// Supported chart kinds.
const (
	KindBar        Kind = "bar"
	KindPie        Kind = "pie"
	KindLine       Kind = "line"
	KindStackedBar Kind = "stacked-bar"
	KindDoughnut   Kind = "doughnut"
	KindRadar      Kind = "radar"
	KindComparison Kind = "comparison"
)

// ComparisonTitle is the heading of the cross-scheme chart.
const ComparisonTitle = "Total Beneficiaries Comparison"

const (
	fontFamily   = "Poppins"
	tealFill     = "rgba(75, 192, 192, 0.2)"
	tealStroke   = "rgba(75, 192, 192, 1)"
	whiteBorder  = "#fff"
	rotateAfter  = 5
	rotatedTicks = 45
)

var (
	// ErrNoSeries is returned when a chart needs at least one series and
	// the dataset has none.
	ErrNoSeries = errors.New("dataset has no series")

	// ErrUnknownKind is returned for chart kinds the presenter cannot draw.
	ErrUnknownKind = errors.New("unknown chart kind")
)

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindBar, KindPie, KindLine, KindStackedBar, KindDoughnut, KindRadar, KindComparison}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Kinds(), k) {
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// chartType is the Chart.js type the kind renders as.
func (k Kind) chartType() string {
	switch k {
	case KindStackedBar, KindComparison:
		return string(KindBar)
	default:
		return string(k)
	}
}

// Presenter builds chart specs. The zero value draws generated colors from
// a clock-seeded source.
type Presenter struct {
	Colors ColorSource
}

var (
	defaultColorsOnce sync.Once
	defaultColors     ColorSource
)

func (p *Presenter) colors() ColorSource {
	if p != nil && p.Colors != nil {
		return p.Colors
	}
	defaultColorsOnce.Do(func() { defaultColors = NewTimeSeededColors() })
	return defaultColors
}

// Spec describes ds as a chart of the given kind titled label.
//
// Pie and doughnut charts flatten the first series into a single slice set.
// Comparison charts span schemes and are built with Comparison instead.
func (p *Presenter) Spec(kind Kind, ds scheme.Dataset, label string) (Spec, error) {
	kind, err := ParseKind(string(kind))
	if err != nil {
		return Spec{}, err
	}
	if kind == KindComparison {
		return Spec{}, fmt.Errorf("comparison charts are built from a mapping: %w", ErrUnknownKind)
	}
	if len(ds.Datasets) == 0 {
		return Spec{}, fmt.Errorf("%s chart for %q: %w", kind, label, ErrNoSeries)
	}

	rotate := len(ds.Labels) > rotateAfter
	spec := Spec{
		Type: kind.chartType(),
		Data: Data{Labels: slices.Clone(ds.Labels)},
	}
	if spec.Data.Labels == nil {
		spec.Data.Labels = []string{}
	}

	switch kind {
	case KindBar:
		spec.Data.Datasets = p.bar(ds)
		spec.Options = options(label, cartesian(rotate))
	case KindPie, KindDoughnut:
		spec.Data.Datasets = []DatasetSpec{{
			Label:           label,
			Data:            slices.Clone(ds.Datasets[0].Data),
			BackgroundColor: Colors(len(ds.Labels), p.colors()),
			BorderColor:     whiteBorder,
			BorderWidth:     1,
		}}
		spec.Options = options(label, nil)
	case KindLine:
		spec.Data.Datasets = lineSeries(ds)
		spec.Options = options(label, cartesian(rotate))
	case KindStackedBar:
		spec.Data.Datasets = p.stacked(ds)
		scales := cartesian(rotate)
		scales.X.Stacked = true
		scales.Y.Stacked = true
		spec.Options = options(label, scales)
	case KindRadar:
		spec.Data.Datasets = radarSeries(ds)
		spec.Options = options(label, nil)
	}
	return spec, nil
}

func (p *Presenter) bar(ds scheme.Dataset) []DatasetSpec {
	var palette []string
	out := make([]DatasetSpec, len(ds.Datasets))
	for i, s := range ds.Datasets {
		var bg any = s.BackgroundColor
		if s.BackgroundColor == "" {
			if palette == nil {
				palette = Colors(len(ds.Labels), p.colors())
			}
			bg = slices.Clone(palette)
		}
		out[i] = DatasetSpec{
			Label:           s.Label,
			Data:            slices.Clone(s.Data),
			BackgroundColor: bg,
			BorderColor:     or(s.BorderColor, whiteBorder),
			BorderWidth:     1,
		}
	}
	return out
}

func (p *Presenter) stacked(ds scheme.Dataset) []DatasetSpec {
	palette := Colors(len(ds.Datasets), p.colors())
	out := make([]DatasetSpec, len(ds.Datasets))
	for i, s := range ds.Datasets {
		out[i] = DatasetSpec{
			Label:           s.Label,
			Data:            slices.Clone(s.Data),
			BackgroundColor: or(s.BackgroundColor, palette[i]),
			BorderColor:     or(s.BorderColor, whiteBorder),
			BorderWidth:     1,
		}
	}
	return out
}

func lineSeries(ds scheme.Dataset) []DatasetSpec {
	out := make([]DatasetSpec, len(ds.Datasets))
	for i, s := range ds.Datasets {
		out[i] = DatasetSpec{
			Label:           s.Label,
			Data:            slices.Clone(s.Data),
			BackgroundColor: or(s.BackgroundColor, tealFill),
			BorderColor:     or(s.BorderColor, tealStroke),
			BorderWidth:     2,
			Fill:            true,
			Tension:         0.4,
		}
	}
	return out
}

func radarSeries(ds scheme.Dataset) []DatasetSpec {
	out := make([]DatasetSpec, len(ds.Datasets))
	for i, s := range ds.Datasets {
		out[i] = DatasetSpec{
			Label:                s.Label,
			Data:                 slices.Clone(s.Data),
			BackgroundColor:      or(s.BackgroundColor, tealFill),
			BorderColor:          or(s.BorderColor, tealStroke),
			BorderWidth:          2,
			PointBackgroundColor: tealStroke,
		}
	}
	return out
}

// Comparison describes every scheme's total beneficiaries side by side.
//
// Labels are scheme names in scheme.SortedIDs order. Each scheme with a
// positive total gets one series, colored by its label position, whose only
// non-zero value sits in its own column. The x axis is stacked so each
// column shows a single full-width bar.
func (p *Presenter) Comparison(m scheme.Mapping) (Spec, error) {
	ids := scheme.SortedIDs(m)
	palette := Colors(len(ids), p.colors())

	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = or(m[id].SchemeName, id)
	}

	var series []DatasetSpec
	for i, id := range ids {
		total := m[id].TotalBeneficiaries
		if total <= 0 {
			continue
		}
		data := make([]float64, len(ids))
		data[i] = float64(total)
		series = append(series, DatasetSpec{
			Label:           labels[i],
			Data:            data,
			BackgroundColor: palette[i],
		})
	}
	if len(series) == 0 {
		return Spec{}, fmt.Errorf("comparison chart: %w", ErrNoSeries)
	}

	scales := cartesian(len(labels) > rotateAfter)
	scales.X.Stacked = true
	return Spec{
		Type:    KindComparison.chartType(),
		Data:    Data{Labels: labels, Datasets: series},
		Options: options(ComparisonTitle, scales),
	}, nil
}

func options(title string, scales *Scales) Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: Plugins{
			Legend: Legend{
				Position: "bottom",
				Labels: LegendLabels{
					Padding:       20,
					UsePointStyle: true,
					PointStyle:    "circle",
					Font:          Font{Family: fontFamily, Size: 12},
				},
			},
			Title: Title{
				Display: true,
				Text:    title,
				Font:    Font{Family: fontFamily, Size: 14, Weight: "500"},
				Padding: Padding{Bottom: 10},
			},
			Tooltip: Tooltip{
				Enabled:         true,
				Mode:            "index",
				Intersect:       false,
				BackgroundColor: "rgba(0, 0, 0, 0.8)",
				TitleFont:       Font{Family: fontFamily, Size: 12, Weight: "bold"},
				BodyFont:        Font{Family: fontFamily, Size: 12},
				Padding:         10,
				CornerRadius:    4,
			},
		},
		Scales:    scales,
		Animation: Animation{Duration: 1000},
		Elements:  Elements{Bar: BarElement{BorderRadius: 4}},
	}
}

func cartesian(rotate bool) *Scales {
	rotation := 0
	if rotate {
		rotation = rotatedTicks
	}
	hidden := false
	return &Scales{
		X: Axis{
			Grid: Grid{Display: &hidden},
			Ticks: AxisTicks{
				Font:        Font{Family: fontFamily, Size: 12},
				MaxRotation: &rotation,
				MinRotation: &rotation,
			},
		},
		Y: Axis{
			Grid: Grid{Color: "rgba(0, 0, 0, 0.05)"},
			Ticks: AxisTicks{
				Font:   Font{Family: fontFamily, Size: 12},
				Format: "compact",
			},
		},
	}
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
