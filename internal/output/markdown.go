package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/scheme"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the dashboard as a human-readable Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes d as Markdown to w.
//
// The output includes:
//   - A title heading with the district and generation time
//   - A summary table
//   - A scheme table for the current view
//   - A district table when district data exists
//   - The list of skipped panels, if any
func (m *MarkdownFormatter) Format(d *dashboard.Dashboard, w io.Writer) error {
	var b strings.Builder

	title := "# Scheme Dashboard"
	if d.Filtered() {
		title += ": " + d.District
	}
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "Generated %s (run `%s`).\n\n", d.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"), d.RunID)
	if n := d.FallbackCount(); n > 0 {
		fmt.Fprintf(&b, "> %d of %d schemes are showing built-in sample data.\n\n", n, len(d.Loads))
	}

	s := d.Headline()
	top := s.TopDistrict
	if top == "" {
		top = "-"
	}
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|--------|------:|\n")
	fmt.Fprintf(&b, "| Total beneficiaries | %s |\n", chart.FormatCount(float64(s.TotalBeneficiaries)))
	fmt.Fprintf(&b, "| Fund utilization | %d%% |\n", s.UtilizationPercent)
	fmt.Fprintf(&b, "| Top district | %s (%s) |\n\n", escapeCell(top), chart.FormatCount(s.TopDistrictValue))

	b.WriteString("## Schemes\n\n")
	ids := scheme.SortedIDs(d.View)
	if len(ids) == 0 {
		b.WriteString("No schemes match this district.\n\n")
	} else {
		b.WriteString("| Scheme | Name | Beneficiaries | Series | Source |\n")
		b.WriteString("|--------|------|--------------:|-------:|--------|\n")
		origins := originByID(d)
		for _, id := range ids {
			ds := d.View[id]
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
				id, escapeCell(ds.SchemeName), chart.FormatCount(float64(ds.TotalBeneficiaries)),
				len(ds.Datasets), origins[id])
		}
		b.WriteString("\n")
	}

	if len(d.DistrictTotals) > 0 {
		b.WriteString("## Districts\n\n")
		b.WriteString("| District | Beneficiaries |\n|----------|--------------:|\n")
		for _, dt := range d.DistrictTotals {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(dt.Name), chart.FormatCount(dt.Value))
		}
		b.WriteString("\n")
	}

	if skipped := d.Skipped(); len(skipped) > 0 {
		b.WriteString("## Skipped charts\n\n")
		for _, p := range skipped {
			fmt.Fprintf(&b, "- `%s`: %s\n", p.ID, p.Skipped)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func originByID(d *dashboard.Dashboard) map[string]string {
	out := make(map[string]string, len(d.Loads))
	for _, r := range d.Loads {
		out[r.ID] = string(r.Origin)
	}
	return out
}

// escapeCell keeps pipes from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
