package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
)

// Section statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
)

// ReportJSON is the top-level JSON structure for summary --json output.
type ReportJSON struct {
	RunID     string        `json:"run_id"`
	Generated string        `json:"generated"`
	District  string        `json:"district"`
	Schemes   int           `json:"schemes"`
	Fallbacks int           `json:"fallbacks"`
	Sections  []SectionJSON `json:"sections,omitempty"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "skipped"
	Content     string `json:"content,omitempty"` // rendered text
}

// Render writes the text report for d to w: a header, then every named
// section in order. Sections with nothing to show print a one-line notice.
func Render(d *dashboard.Dashboard, sections []string, w io.Writer) error {
	title := "Scheme Dashboard"
	if d.Filtered() {
		title += ": " + d.District
	}
	fmt.Fprintf(w, "%s\n%s\n\n", SectionTitle(title), strings.Repeat("=", len(title)))
	fmt.Fprintf(w, "Run:       %s\n", d.RunID)
	fmt.Fprintf(w, "Generated: %s\n", d.GeneratedAt.UTC().Format(time.RFC3339))
	if n := d.FallbackCount(); n > 0 {
		fmt.Fprintf(w, "Notice:    %s\n", colorYellow.Sprintf("%d of %d schemes use built-in sample data", n, len(d.Loads)))
	}

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		fmt.Fprintln(w)
		if err := sec.Analyze(d); err != nil {
			if errors.Is(err, ErrNoData) {
				fmt.Fprintf(w, "%s\n  (skipped: %s)\n", SectionTitle(sec.Description()), err)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}
		if err := sec.Render(w); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
	}
	return nil
}

// RenderJSON writes the report as machine-readable JSON.
func RenderJSON(d *dashboard.Dashboard, sections []string, w io.Writer) error {
	out := ReportJSON{
		RunID:     d.RunID,
		Generated: d.GeneratedAt.UTC().Format(time.RFC3339),
		District:  d.District,
		Schemes:   len(d.View),
		Fallbacks: d.FallbackCount(),
	}

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sj := SectionJSON{
			Name:        sec.Name(),
			Description: sec.Description(),
		}

		if err := sec.Analyze(d); err != nil {
			if errors.Is(err, ErrNoData) {
				sj.Status = StatusSkipped
				out.Sections = append(out.Sections, sj)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}

		sj.Status = StatusOK
		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
		sj.Content = buf.String()
		out.Sections = append(out.Sections, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ResolveSections determines which sections to run without printing warnings.
// If filter is empty, all registered sections are used.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}

// UnknownSections returns the names in filter that are not registered.
func UnknownSections(filter []string) []string {
	var unknown []string
	for _, name := range filter {
		if Get(name) == nil {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// count formats a beneficiary figure with Indian digit grouping.
func count[T int64 | float64](v T) string {
	return chart.FormatCount(float64(v))
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n", SectionTitle(title))
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
}
