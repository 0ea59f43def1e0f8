// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package dashboard

import "github.com/schemedash/schemedash/internal/chart"

// ComparisonID is the panel id of the cross-scheme chart.
const ComparisonID = "comparison-chart"

// PanelDef places one chart on the dashboard.
type PanelDef struct {
	ID       string
	SchemeID string // empty for the comparison panel
	Kind     chart.Kind
	Title    string
}

// Layout is the fixed set of dashboard panels in display order.
var Layout = []PanelDef{
	{ID: "laptop-chart", SchemeID: "laptop", Kind: chart.KindBar, Title: "Students Benefited"},
	{ID: "uniform-chart", SchemeID: "uniform", Kind: chart.KindPie, Title: "Uniforms Distributed"},
	{ID: "cycle-chart", SchemeID: "cycle", Kind: chart.KindLine, Title: "Cycles Distributed"},
	{ID: "scholarship-chart", SchemeID: "scholarship", Kind: chart.KindStackedBar, Title: "Scholarship Amount (₹)"},
	{ID: "sanitary-pad-chart", SchemeID: "sanitary-pad", Kind: chart.KindDoughnut, Title: "Sanitary Pads Distributed"},
	{ID: "cwsn-chart", SchemeID: "cwsn", Kind: chart.KindRadar, Title: "Support Provided"},
	{ID: ComparisonID, Kind: chart.KindComparison, Title: chart.ComparisonTitle},
}

// LookupPanel finds a layout entry by scheme id, panel id, or "comparison".
func LookupPanel(name string) (PanelDef, bool) {
	for _, def := range Layout {
		if def.ID == name || (def.SchemeID != "" && def.SchemeID == name) {
			return def, true
		}
		if def.Kind == chart.KindComparison && name == string(chart.KindComparison) {
			return def, true
		}
	}
	return PanelDef{}, false
}
