// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package district narrows a scheme mapping down to a single district.
package district

import (
	"fmt"
	"log/slog"

	"github.com/schemedash/schemedash/internal/scheme"
)

// All is the selector value meaning "no district filter".
const All = "all"

// UnknownDistrictError reports a district that no scheme mentions.
type UnknownDistrictError struct {
	Name string
}

func (e *UnknownDistrictError) Error() string {
	return fmt.Sprintf("unknown district %q", e.Name)
}

// Filter returns the view of m for a single district.
//
// Filtering by All returns m itself. Any other name yields a new mapping
// holding only the schemes whose district list mentions name. Each kept
// dataset is reduced to one label (the district), one district entry, and one
// value per series, taken from the district's position in the original labels.
// Schemes without a district breakdown are dropped. m is never modified.
func Filter(name string, m scheme.Mapping) scheme.Mapping {
	if name == All {
		return m
	}

	out := make(scheme.Mapping)
	for _, id := range scheme.SortedIDs(m) {
		d := m[id]
		if !d.HasDistricts() {
			continue
		}
		match, ok := find(d.Districts, name)
		if !ok {
			continue
		}
		out[id] = narrow(id, d, match)
	}
	return out
}

// narrow builds the single-district dataset for d.
func narrow(id string, d scheme.Dataset, match scheme.DistrictValue) scheme.Dataset {
	out := scheme.Dataset{
		SchemeName:         d.SchemeName,
		TotalBeneficiaries: d.TotalBeneficiaries,
		Labels:             []string{match.Name},
		Districts:          []scheme.DistrictValue{match},
	}

	pos, joined := d.LabelIndex()[match.Name]
	if !joined {
		// The district has no column in the series data; keep the district
		// entry but do not guess at series values.
		if len(d.Datasets) > 0 {
			slog.Warn("district missing from dataset labels, dropping series",
				"scheme", id,
				"error", &scheme.MalformedError{
					Scheme: d.SchemeName,
					Field:  "labels",
					Reason: fmt.Sprintf("district %q has no label position", match.Name),
				})
		}
		return out
	}
	if len(d.Datasets) == 0 {
		return out
	}

	out.Datasets = make([]scheme.Series, len(d.Datasets))
	for i, s := range d.Datasets {
		var v float64
		if pos < len(s.Data) {
			v = s.Data[pos]
		}
		out.Datasets[i] = scheme.Series{
			Label:           s.Label,
			Data:            []float64{v},
			BackgroundColor: s.BackgroundColor,
			BorderColor:     s.BorderColor,
		}
	}
	return out
}

func find(districts []scheme.DistrictValue, name string) (scheme.DistrictValue, bool) {
	for _, dv := range districts {
		if dv.Name == name {
			return dv, true
		}
	}
	return scheme.DistrictValue{}, false
}

// Names returns every district mentioned in m, each once, in first-seen order
// across schemes in display order.
func Names(m scheme.Mapping) []string {
	var names []string
	seen := make(map[string]bool)
	for _, id := range scheme.SortedIDs(m) {
		for _, dv := range m[id].Districts {
			if !seen[dv.Name] {
				seen[dv.Name] = true
				names = append(names, dv.Name)
			}
		}
	}
	return names
}

// Validate reports whether name is All or a district mentioned in m.
func Validate(name string, m scheme.Mapping) error {
	if name == All {
		return nil
	}
	for _, n := range Names(m) {
		if n == name {
			return nil
		}
	}
	return &UnknownDistrictError{Name: name}
}
