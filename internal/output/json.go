package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/scheme"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope is the machine-readable dashboard document.
type JSONEnvelope struct {
	RunID           string                    `json:"runId"`
	GeneratedAt     string                    `json:"generatedAt"`
	District        string                    `json:"district"`
	Summary         aggregate.Summary         `json:"summary"`
	DistrictSummary *aggregate.Summary        `json:"districtSummary,omitempty"`
	Districts       []string                  `json:"districts"`
	DistrictTotals  []aggregate.DistrictTotal `json:"districtTotals"`
	Schemes         scheme.Mapping            `json:"schemes"`
	Panels          []dashboard.Panel         `json:"panels"`
	Loads           []LoadStatus              `json:"loads"`
}

// LoadStatus is the outcome of loading one scheme.
type LoadStatus struct {
	ID         string   `json:"id"`
	Origin     string   `json:"origin"`
	Error      string   `json:"error,omitempty"`
	Repairs    []string `json:"repairs,omitempty"`
	Issues     []string `json:"issues,omitempty"`
	DurationMS int64    `json:"durationMs"`
}

// JSONFormatter writes the dashboard as a single JSON document.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes d as JSON to w. Output is pretty-printed for terminals and
// buffers and compact for pipes and files, unless Compact forces it.
func (f *JSONFormatter) Format(d *dashboard.Dashboard, w io.Writer) error {
	return writeJSON(w, NewEnvelope(d), f.shouldCompact(w))
}

// NewEnvelope builds the JSON document for d.
func NewEnvelope(d *dashboard.Dashboard) JSONEnvelope {
	schemes := d.View
	if schemes == nil {
		schemes = scheme.Mapping{}
	}
	return JSONEnvelope{
		RunID:           d.RunID,
		GeneratedAt:     d.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		District:        d.District,
		Summary:         d.Summary,
		DistrictSummary: d.DistrictSummary,
		Districts:       nonNil(d.Districts),
		DistrictTotals:  nonNil(d.DistrictTotals),
		Schemes:         schemes,
		Panels:          nonNil(d.Panels),
		Loads:           LoadStatuses(d),
	}
}

// LoadStatuses summarizes d's load results in request order.
func LoadStatuses(d *dashboard.Dashboard) []LoadStatus {
	out := make([]LoadStatus, len(d.Loads))
	for i, r := range d.Loads {
		s := LoadStatus{
			ID:         r.ID,
			Origin:     string(r.Origin),
			DurationMS: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			s.Error = r.Err.Error()
		}
		for _, rep := range r.Repairs {
			s.Repairs = append(s.Repairs, rep.Error())
		}
		for _, e := range r.Issues {
			s.Issues = append(s.Issues, e.Error())
		}
		out[i] = s
	}
	return out
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	return writeJSON(w, v, false)
}

func writeJSON(w io.Writer, v any, compact bool) error {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// bytes.Buffer and friends: pretty.
	return false
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
