// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package scheme defines the core domain types for schemedash: per-scheme
// datasets, their series and district breakdowns, and the mapping that ties
// them to scheme ids.
package scheme

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// KnownIDs lists the scheme ids the dashboard always displays, in display order.
var KnownIDs = []string{"laptop", "uniform", "cycle", "scholarship", "sanitary-pad", "cwsn"}

// Dataset is one scheme's statistics as served by the data source.
type Dataset struct {
	SchemeName         string          `json:"schemeName,omitempty" toml:"scheme_name"`
	TotalBeneficiaries int64           `json:"totalBeneficiaries,omitempty" toml:"total_beneficiaries"`
	Labels             []string        `json:"labels,omitempty" toml:"labels"`
	Datasets           []Series        `json:"datasets,omitempty" toml:"datasets"`
	Districts          []DistrictValue `json:"districts,omitempty" toml:"districts"`

	// roundedFrom holds the wire text of a fractional total that decoding
	// rounded. Normalize reports it and clears it.
	roundedFrom string
}

// maxExactTotal bounds totals that survive the float64 to int64 conversion.
const maxExactTotal = 1 << 62

// UnmarshalJSON decodes the wire format. totalBeneficiaries may be any JSON
// number: integral values such as 12500.0 or 1.25e4 are taken as is, and
// fractional ones are rounded half away from zero.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	type plain Dataset
	var wire struct {
		plain
		TotalBeneficiaries *json.Number `json:"totalBeneficiaries,omitempty"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*d = Dataset(wire.plain)
	d.TotalBeneficiaries, d.roundedFrom = 0, ""
	if wire.TotalBeneficiaries == nil {
		return nil
	}

	raw := wire.TotalBeneficiaries.String()
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		d.TotalBeneficiaries = n
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.Abs(f) > maxExactTotal {
		return fmt.Errorf("totalBeneficiaries: %s is out of range", raw)
	}
	r := math.Round(f)
	d.TotalBeneficiaries = int64(r)
	if r != f {
		d.roundedFrom = raw
	}
	return nil
}

// Series is a named sequence of values, positionally aligned with the
// dataset's labels.
type Series struct {
	Label string    `json:"label" toml:"label"`
	Data  []float64 `json:"data" toml:"data"`

	// Optional color overrides; the chart presenter uses its defaults when empty.
	BackgroundColor string `json:"backgroundColor,omitempty" toml:"background_color"`
	BorderColor     string `json:"borderColor,omitempty" toml:"border_color"`
}

// DistrictValue is a single district's contribution to a scheme.
type DistrictValue struct {
	Name  string  `json:"name" toml:"name"`
	Value float64 `json:"value" toml:"value"`
}

// Mapping maps scheme id to its dataset.
type Mapping map[string]Dataset

// IsEmpty reports whether d carries no data at all.
func (d Dataset) IsEmpty() bool {
	return d.SchemeName == "" && d.TotalBeneficiaries == 0 &&
		len(d.Labels) == 0 && len(d.Datasets) == 0 && len(d.Districts) == 0
}

// HasDistricts reports whether d carries a district breakdown.
func (d Dataset) HasDistricts() bool {
	return d.Districts != nil
}

// LabelIndex returns the position of every label. When a label repeats, its
// first position wins.
func (d Dataset) LabelIndex() map[string]int {
	idx := make(map[string]int, len(d.Labels))
	for i, l := range d.Labels {
		if _, ok := idx[l]; !ok {
			idx[l] = i
		}
	}
	return idx
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		SchemeName:         d.SchemeName,
		TotalBeneficiaries: d.TotalBeneficiaries,
	}
	if d.Labels != nil {
		out.Labels = append([]string{}, d.Labels...)
	}
	if d.Datasets != nil {
		out.Datasets = make([]Series, len(d.Datasets))
		for i, s := range d.Datasets {
			out.Datasets[i] = s.Clone()
		}
	}
	if d.Districts != nil {
		out.Districts = append([]DistrictValue{}, d.Districts...)
	}
	return out
}

// Clone returns a deep copy of s.
func (s Series) Clone() Series {
	out := s
	if s.Data != nil {
		out.Data = append([]float64{}, s.Data...)
	}
	return out
}

// Clone returns a deep copy of m. A nil mapping clones to nil.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	for id, d := range m {
		out[id] = d.Clone()
	}
	return out
}

// SortedIDs returns the ids in m in deterministic order: known ids first in
// display order, then any other ids lexically.
func SortedIDs(m Mapping) []string {
	ids := make([]string, 0, len(m))
	known := make(map[string]bool, len(KnownIDs))
	for _, id := range KnownIDs {
		known[id] = true
		if _, ok := m[id]; ok {
			ids = append(ids, id)
		}
	}
	var extra []string
	for id := range m {
		if !known[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// IsKnown reports whether id is one of the dashboard's scheme ids.
func IsKnown(id string) bool {
	for _, k := range KnownIDs {
		if k == id {
			return true
		}
	}
	return false
}
