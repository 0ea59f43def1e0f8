package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/dashboard"
)

// districtsSection lists beneficiaries per district, summed across every
// loaded scheme, in first-seen order.
type districtsSection struct {
	totals   []aggregate.DistrictTotal
	schemes  map[string]int
	selected string
	top      string
}

var _ Section = (*districtsSection)(nil)

func (s *districtsSection) Name() string        { return "districts" }
func (s *districtsSection) Description() string { return "District totals" }

func (s *districtsSection) Analyze(d *dashboard.Dashboard) error {
	if len(d.DistrictTotals) == 0 {
		return fmt.Errorf("no scheme reports districts: %w", ErrNoData)
	}
	s.totals = d.DistrictTotals
	s.top = d.Summary.TopDistrict
	s.selected = ""
	if d.Filtered() {
		s.selected = d.District
	}
	s.schemes = make(map[string]int)
	for _, ds := range d.Mapping {
		for _, dv := range ds.Districts {
			s.schemes[dv.Name]++
		}
	}
	return nil
}

func (s *districtsSection) Render(w io.Writer) error {
	heading(w, s.Description())
	tbl := NewTable(
		Column{Header: "District"},
		Column{Header: "Beneficiaries", Align: AlignRight},
		Column{Header: "Schemes", Align: AlignRight},
		Column{Header: ""},
	)
	for _, dt := range s.totals {
		var marks []string
		if dt.Name == s.top {
			marks = append(marks, "top")
		}
		if dt.Name == s.selected {
			marks = append(marks, "selected")
		}
		tbl.AddRow(dt.Name, count(dt.Value), strconv.Itoa(s.schemes[dt.Name]), strings.Join(marks, ", "))
	}
	return tbl.Render(w)
}
