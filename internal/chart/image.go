// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ImageFormat is a static image encoding for exported charts.
type ImageFormat string

// Supported image formats.
const (
	ImagePNG ImageFormat = "png"
	ImageSVG ImageFormat = "svg"
)

// ErrUnsupportedImage is returned for chart kinds that have no static
// image rendering.
var ErrUnsupportedImage = errors.New("chart kind has no image rendering")

// Image dimensions in pixels.
const (
	ImageWidth  = 800
	ImageHeight = 400
)

// RenderImage draws s, built for kind, to w as a static image.
//
// Bar images draw the first series. Radar charts are not supported.
func RenderImage(w io.Writer, kind Kind, s Spec, format ImageFormat) error {
	rp, err := provider(format)
	if err != nil {
		return err
	}

	switch kind {
	case KindBar:
		if len(s.Data.Datasets) == 0 {
			return ErrNoSeries
		}
		bars := barValues(s.Data.Labels, s.Data.Datasets[:1])
		return renderBars(w, rp, s.Options.Plugins.Title.Text, bars)
	case KindComparison:
		bars := barValues(s.Data.Labels, s.Data.Datasets)
		return renderBars(w, rp, s.Options.Plugins.Title.Text, bars)
	case KindStackedBar:
		return renderStacked(w, rp, s)
	case KindPie, KindDoughnut:
		return renderPie(w, rp, kind, s)
	case KindLine:
		return renderLine(w, rp, s)
	case KindRadar:
		return fmt.Errorf("%s: %w", kind, ErrUnsupportedImage)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

func provider(format ImageFormat) (gochart.RendererProvider, error) {
	switch format {
	case ImagePNG:
		return gochart.PNG, nil
	case ImageSVG:
		return gochart.SVG, nil
	default:
		return nil, fmt.Errorf("unknown image format %q", format)
	}
}

// barValues collapses datasets into one bar per label: the column sum,
// colored by the first series with a non-zero value there.
func barValues(labels []string, datasets []DatasetSpec) []gochart.Value {
	bars := make([]gochart.Value, 0, len(labels))
	for i, label := range labels {
		var sum float64
		fill := ""
		for _, ds := range datasets {
			if i >= len(ds.Data) {
				continue
			}
			sum += ds.Data[i]
			if fill == "" && ds.Data[i] != 0 {
				fill = colorAt(ds, i)
			}
		}
		if fill == "" {
			fill = Palette[i%len(Palette)]
		}
		bars = append(bars, gochart.Value{
			Label: label,
			Value: sum,
			Style: gochart.Style{
				FillColor:   parseColor(fill, i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	return bars
}

func renderBars(w io.Writer, rp gochart.RendererProvider, title string, bars []gochart.Value) error {
	if len(bars) == 0 {
		return ErrNoSeries
	}
	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}
	width := barWidth(len(bars))
	bc := gochart.BarChart{
		Title:      title,
		Width:      ImageWidth,
		Height:     ImageHeight,
		BarWidth:   width,
		BarSpacing: max(4, width/3),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Range:          valueRange(values),
			ValueFormatter: tickFormatter,
		},
		Bars: bars,
	}
	return bc.Render(rp, w)
}

func renderStacked(w io.Writer, rp gochart.RendererProvider, s Spec) error {
	var grand float64
	bars := make([]gochart.StackedBar, 0, len(s.Data.Labels))
	for i, label := range s.Data.Labels {
		bar := gochart.StackedBar{Name: label}
		for j, ds := range s.Data.Datasets {
			v := 0.0
			if i < len(ds.Data) {
				v = math.Max(ds.Data[i], 0)
			}
			grand += v
			bar.Values = append(bar.Values, gochart.Value{
				Label: ds.Label,
				Value: v,
				Style: gochart.Style{
					FillColor:   parseColor(colorAt(ds, i), j),
					StrokeColor: drawing.ColorWhite,
					StrokeWidth: 1,
				},
			})
		}
		bars = append(bars, bar)
	}
	if grand <= 0 {
		return ErrNoSeries
	}
	sbc := gochart.StackedBarChart{
		Title:      s.Options.Plugins.Title.Text,
		Width:      ImageWidth,
		Height:     ImageHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Bars:       bars,
	}
	return sbc.Render(rp, w)
}

func renderPie(w io.Writer, rp gochart.RendererProvider, kind Kind, s Spec) error {
	if len(s.Data.Datasets) == 0 {
		return ErrNoSeries
	}
	ds := s.Data.Datasets[0]
	var values []gochart.Value
	var sum float64
	for i, label := range s.Data.Labels {
		if i >= len(ds.Data) || ds.Data[i] <= 0 {
			continue
		}
		sum += ds.Data[i]
		values = append(values, gochart.Value{
			Label: label,
			Value: ds.Data[i],
			Style: gochart.Style{FillColor: parseColor(colorAt(ds, i), i)},
		})
	}
	if sum <= 0 {
		return ErrNoSeries
	}

	title := s.Options.Plugins.Title.Text
	if kind == KindDoughnut {
		dc := gochart.DonutChart{Title: title, Width: ImageWidth, Height: ImageHeight, Values: values}
		return dc.Render(rp, w)
	}
	pc := gochart.PieChart{Title: title, Width: ImageWidth, Height: ImageHeight, Values: values}
	return pc.Render(rp, w)
}

func renderLine(w io.Writer, rp gochart.RendererProvider, s Spec) error {
	if len(s.Data.Datasets) == 0 || len(s.Data.Labels) == 0 {
		return ErrNoSeries
	}
	n := len(s.Data.Labels)
	// go-chart derives the x range from the outermost ticks, so unlabelled
	// ticks half a step out keep a single-label chart from collapsing.
	ticks := make([]gochart.Tick, 0, n+2)
	ticks = append(ticks, gochart.Tick{Value: 0.5})
	for i, label := range s.Data.Labels {
		ticks = append(ticks, gochart.Tick{Value: float64(i + 1), Label: label})
	}
	ticks = append(ticks, gochart.Tick{Value: float64(n) + 0.5})

	var all []float64
	series := make([]gochart.Series, 0, len(s.Data.Datasets))
	for j, ds := range s.Data.Datasets {
		k := min(n, len(ds.Data))
		if k == 0 {
			continue
		}
		xs := make([]float64, k)
		ys := make([]float64, k)
		for i := range k {
			xs[i] = float64(i + 1)
			ys[i] = ds.Data[i]
		}
		all = append(all, ys...)
		series = append(series, gochart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: parseColor(ds.BorderColor, j),
				StrokeWidth: float64(ds.BorderWidth),
				FillColor:   parseColor(colorAt(ds, 0), j),
				DotWidth:    3,
				DotColor:    parseColor(ds.BorderColor, j),
			},
		})
	}

	if len(series) == 0 {
		return ErrNoSeries
	}

	ch := gochart.Chart{
		Title:      s.Options.Plugins.Title.Text,
		Width:      ImageWidth,
		Height:     ImageHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Range:          valueRange(all),
			ValueFormatter: tickFormatter,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch.Render(rp, w)
}

func tickFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return FormatTick(f)
	}
	return fmt.Sprint(v)
}

// valueRange spans zero and every value, never collapsing to a point.
func valueRange(values []float64) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi * 1.1}
}

func barWidth(n int) int {
	w := (ImageWidth-120)/n - 12
	return max(8, min(60, w))
}

// colorAt returns the background color ds uses for position i.
func colorAt(ds DatasetSpec, i int) string {
	colors := ds.Colors()
	switch {
	case len(colors) == 0:
		return ""
	case len(colors) == 1:
		return colors[0]
	default:
		return colors[i%len(colors)]
	}
}

// parseColor understands the hex, rgb(a) and hsl forms the presenter emits.
// Anything else falls back to the palette entry at i.
func parseColor(s string, i int) drawing.Color {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if hex := s[1:]; isHex(hex) && (len(hex) == 3 || len(hex) == 6) {
			return drawing.ColorFromHex(hex)
		}
	case strings.HasPrefix(s, "rgba("), strings.HasPrefix(s, "rgb("):
		if c, ok := parseRGBA(s); ok {
			return c
		}
	case strings.HasPrefix(s, "hsl("):
		if c, ok := parseHSL(s); ok {
			return c
		}
	}
	return drawing.ColorFromHex(strings.TrimPrefix(Palette[i%len(Palette)], "#"))
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return s != ""
}

func args(s string) []string {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end <= open {
		return nil
	}
	parts := strings.Split(s[open+1:end], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(parts[i]), "%"))
	}
	return parts
}

func parseRGBA(s string) (drawing.Color, bool) {
	parts := args(s)
	if len(parts) != 3 && len(parts) != 4 {
		return drawing.Color{}, false
	}
	var rgb [3]uint8
	for i := range 3 {
		v, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return drawing.Color{}, false
		}
		rgb[i] = uint8(v)
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(parts[3], 64)
		if err != nil || a < 0 || a > 1 {
			return drawing.Color{}, false
		}
		alpha = a
	}
	return drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(math.Round(alpha * 255))}, true
}

func parseHSL(s string) (drawing.Color, bool) {
	parts := args(s)
	if len(parts) != 3 {
		return drawing.Color{}, false
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return drawing.Color{}, false
		}
		v[i] = f
	}
	r, g, b := hslToRGB(v[0], v[1]/100, v[2]/100)
	return drawing.Color{R: r, G: g, B: b, A: 255}, true
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	conv := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return conv(r), conv(g), conv(b)
}
