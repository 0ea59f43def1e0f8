package report

import (
	"fmt"
	"io"

	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/dashboard"
)

// summarySection shows the headline figures. With a district selected it
// adds a column for the district beside the all-district figures.
type summarySection struct {
	all      aggregate.Summary
	district *aggregate.Summary
	name     string
}

var _ Section = (*summarySection)(nil)

func (s *summarySection) Name() string        { return "summary" }
func (s *summarySection) Description() string { return "Headline figures" }

func (s *summarySection) Analyze(d *dashboard.Dashboard) error {
	s.all = d.Summary
	s.district = d.DistrictSummary
	s.name = d.District
	return nil
}

func (s *summarySection) Render(w io.Writer) error {
	heading(w, s.Description())

	cols := []Column{{Header: "Metric"}, {Header: "All districts", Align: AlignRight}}
	if s.district != nil {
		cols = append(cols, Column{Header: s.name, Align: AlignRight})
	}
	tbl := NewTable(cols...)

	row := func(metric string, f func(aggregate.Summary) string) {
		values := []string{metric, f(s.all)}
		if s.district != nil {
			values = append(values, f(*s.district))
		}
		tbl.AddRow(values...)
	}
	row("Total beneficiaries", func(a aggregate.Summary) string { return count(a.TotalBeneficiaries) })
	row("Fund utilization", func(a aggregate.Summary) string { return fmt.Sprintf("%d%%", a.UtilizationPercent) })
	row("Top district", func(a aggregate.Summary) string {
		if a.TopDistrict == "" {
			return "-"
		}
		return a.TopDistrict
	})
	row("Top district beneficiaries", func(a aggregate.Summary) string {
		if a.TopDistrict == "" {
			return "-"
		}
		return count(a.TopDistrictValue)
	})
	return tbl.Render(w)
}
