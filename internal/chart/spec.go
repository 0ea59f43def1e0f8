// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package chart

// Spec is a declarative chart description in the shape Chart.js consumes.
type Spec struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds a chart's category labels and series.
type Data struct {
	Labels   []string      `json:"labels"`
	Datasets []DatasetSpec `json:"datasets"`
}

// DatasetSpec is one rendered series with its styling. BackgroundColor is
// either a single color or one color per label.
type DatasetSpec struct {
	Label                string    `json:"label"`
	Data                 []float64 `json:"data"`
	BackgroundColor      any       `json:"backgroundColor,omitempty"`
	BorderColor          string    `json:"borderColor,omitempty"`
	BorderWidth          int       `json:"borderWidth,omitempty"`
	Fill                 bool      `json:"fill,omitempty"`
	Tension              float64   `json:"tension,omitempty"`
	PointBackgroundColor string    `json:"pointBackgroundColor,omitempty"`
}

// Colors returns the dataset's background colors as a slice, whether it was
// given one color or many.
func (d DatasetSpec) Colors() []string {
	switch c := d.BackgroundColor.(type) {
	case string:
		return []string{c}
	case []string:
		return c
	default:
		return nil
	}
}

// Font is a Chart.js font descriptor.
type Font struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Weight string `json:"weight,omitempty"`
}

// Padding is a Chart.js padding descriptor.
type Padding struct {
	Bottom int `json:"bottom"`
}

// Options holds chart-wide presentation settings.
type Options struct {
	Responsive          bool      `json:"responsive"`
	MaintainAspectRatio bool      `json:"maintainAspectRatio"`
	Plugins             Plugins   `json:"plugins"`
	Scales              *Scales   `json:"scales,omitempty"`
	Animation           Animation `json:"animation"`
	Elements            Elements  `json:"elements"`
}

// Plugins configures legend, title and tooltip.
type Plugins struct {
	Legend  Legend  `json:"legend"`
	Title   Title   `json:"title"`
	Tooltip Tooltip `json:"tooltip"`
}

// Legend configures the chart legend.
type Legend struct {
	Position string       `json:"position"`
	Labels   LegendLabels `json:"labels"`
}

// LegendLabels styles legend entries.
type LegendLabels struct {
	Padding       int    `json:"padding"`
	UsePointStyle bool   `json:"usePointStyle"`
	PointStyle    string `json:"pointStyle"`
	Font          Font   `json:"font"`
}

// Title configures the chart heading.
type Title struct {
	Display bool    `json:"display"`
	Text    string  `json:"text"`
	Font    Font    `json:"font"`
	Padding Padding `json:"padding"`
}

// Tooltip configures hover tooltips.
type Tooltip struct {
	Enabled         bool   `json:"enabled"`
	Mode            string `json:"mode"`
	Intersect       bool   `json:"intersect"`
	BackgroundColor string `json:"backgroundColor"`
	TitleFont       Font   `json:"titleFont"`
	BodyFont        Font   `json:"bodyFont"`
	Padding         int    `json:"padding"`
	CornerRadius    int    `json:"cornerRadius"`
}

// Scales configures the cartesian axes.
type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

// Axis configures one axis.
type Axis struct {
	Stacked bool      `json:"stacked,omitempty"`
	Grid    Grid      `json:"grid"`
	Ticks   AxisTicks `json:"ticks"`
}

// Grid configures axis grid lines.
type Grid struct {
	Display *bool  `json:"display,omitempty"`
	Color   string `json:"color,omitempty"`
}

// AxisTicks configures tick labels. Format names the label formatter the
// renderer applies; "compact" means FormatTick.
type AxisTicks struct {
	Font        Font   `json:"font"`
	MaxRotation *int   `json:"maxRotation,omitempty"`
	MinRotation *int   `json:"minRotation,omitempty"`
	Format      string `json:"format,omitempty"`
}

// Animation configures transitions.
type Animation struct {
	Duration int `json:"duration"`
}

// Elements configures element defaults.
type Elements struct {
	Bar BarElement `json:"bar"`
}

// BarElement styles bars.
type BarElement struct {
	BorderRadius int `json:"borderRadius"`
}
