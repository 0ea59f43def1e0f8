// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package aggregate derives dashboard summary figures from a scheme mapping.
package aggregate

import (
	"math"

	"github.com/schemedash/schemedash/internal/scheme"
)

// DefaultCapacity is the reference beneficiary count that corresponds to
// 100% utilization.
const DefaultCapacity = 50000

// Summary holds the dashboard's headline figures.
type Summary struct {
	TotalBeneficiaries int64   `json:"totalBeneficiaries"`
	UtilizationPercent int     `json:"utilizationPercent"`
	TopDistrict        string  `json:"topDistrict"`
	TopDistrictValue   float64 `json:"topDistrictValue"`
}

// DistrictTotal is a district's value summed across every scheme.
type DistrictTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ComputeSummary aggregates m against DefaultCapacity.
func ComputeSummary(m scheme.Mapping) Summary {
	return ComputeSummaryWithCapacity(m, DefaultCapacity)
}

// ComputeSummaryWithCapacity aggregates m, normalizing utilization against
// capacity. A non-positive capacity falls back to DefaultCapacity.
//
// The top district is the one with the strictly greatest summed value; when
// two districts tie, the one encountered first wins. Datasets are visited in
// scheme.SortedIDs order and districts in list order, so the result does not
// depend on map iteration.
func ComputeSummaryWithCapacity(m scheme.Mapping, capacity int64) Summary {
	var s Summary
	for _, d := range m {
		s.TotalBeneficiaries += d.TotalBeneficiaries
	}
	s.UtilizationPercent = Utilization(s.TotalBeneficiaries, capacity)

	for _, dt := range DistrictTotals(m) {
		if dt.Value > s.TopDistrictValue {
			s.TopDistrict = dt.Name
			s.TopDistrictValue = dt.Value
		}
	}
	return s
}

// Utilization returns round(total/capacity*100) clamped to [0,100].
// Halves round away from zero.
func Utilization(total, capacity int64) int {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	pct := math.Round(float64(total) / float64(capacity) * 100)
	switch {
	case pct > 100:
		return 100
	case pct < 0:
		return 0
	default:
		return int(pct)
	}
}

// DistrictTotals sums district values by name across m, in first-encounter
// order. Datasets without districts contribute nothing.
func DistrictTotals(m scheme.Mapping) []DistrictTotal {
	var totals []DistrictTotal
	pos := make(map[string]int)
	for _, id := range scheme.SortedIDs(m) {
		for _, dv := range m[id].Districts {
			i, ok := pos[dv.Name]
			if !ok {
				i = len(totals)
				pos[dv.Name] = i
				totals = append(totals, DistrictTotal{Name: dv.Name})
			}
			totals[i].Value += dv.Value
		}
	}
	return totals
}
