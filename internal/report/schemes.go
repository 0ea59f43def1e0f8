package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/scheme"
)

type schemeRow struct {
	id, name, origin, status string
	total                    int64
	labels, series           int
}

// schemesSection lists every scheme in the current view with its chart
// status.
type schemesSection struct {
	rows []schemeRow
}

var _ Section = (*schemesSection)(nil)

func (s *schemesSection) Name() string        { return "schemes" }
func (s *schemesSection) Description() string { return "Schemes" }

func (s *schemesSection) Analyze(d *dashboard.Dashboard) error {
	origins := make(map[string]string, len(d.Loads))
	for _, r := range d.Loads {
		origins[r.ID] = string(r.Origin)
	}
	status := make(map[string]string, len(d.Panels))
	for _, p := range d.Panels {
		if p.SchemeID == "" {
			continue
		}
		if p.Skipped != "" {
			status[p.SchemeID] = p.Skipped
		} else {
			status[p.SchemeID] = "drawn"
		}
	}

	s.rows = s.rows[:0]
	for _, id := range scheme.SortedIDs(d.View) {
		ds := d.View[id]
		s.rows = append(s.rows, schemeRow{
			id:     id,
			name:   ds.SchemeName,
			origin: origins[id],
			status: status[id],
			total:  ds.TotalBeneficiaries,
			labels: len(ds.Labels),
			series: len(ds.Datasets),
		})
	}
	if len(s.rows) == 0 {
		return fmt.Errorf("schemes: %w", ErrNoData)
	}
	return nil
}

func (s *schemesSection) Render(w io.Writer) error {
	heading(w, s.Description())
	tbl := NewTable(
		Column{Header: "ID"},
		Column{Header: "Name"},
		Column{Header: "Beneficiaries", Align: AlignRight},
		Column{Header: "Labels", Align: AlignRight},
		Column{Header: "Series", Align: AlignRight},
		Column{Header: "Source", Color: ColorOrigin},
		Column{Header: "Chart", Color: ColorStatus},
	)
	for _, r := range s.rows {
		tbl.AddRow(r.id, r.name, count(r.total), strconv.Itoa(r.labels), strconv.Itoa(r.series), r.origin, r.status)
	}
	return tbl.Render(w)
}
