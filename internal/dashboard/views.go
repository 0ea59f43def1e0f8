// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/district"
)

// View is the dashboard as seen with one district selected.
type View struct {
	District string            `json:"district"`
	Summary  aggregate.Summary `json:"summary"`
	Panels   []Panel           `json:"panels"`
}

// Views precomputes a view for every selector option, in selector order.
// The view for the dashboard's own district reuses its panels.
func (d *Dashboard) Views() []View {
	views := make([]View, 0, len(d.Districts))
	for _, name := range d.Districts {
		if name == d.District {
			views = append(views, View{District: name, Summary: d.Headline(), Panels: d.Panels})
			continue
		}
		m := district.Filter(name, d.Mapping)
		views = append(views, View{
			District: name,
			Summary:  aggregate.ComputeSummaryWithCapacity(m, d.capacity),
			Panels:   d.panels(m),
		})
	}
	return views
}
