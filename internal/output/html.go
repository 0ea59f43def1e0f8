package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/schemedash/schemedash/internal/aggregate"
	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/district"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// ChartJSURL is the Chart.js build the page loads.
const ChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

// HTMLFormatter writes the dashboard as a single HTML page. Every district
// view is embedded, so the selector works without a server.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes d as a self-contained HTML dashboard to w.
func (h *HTMLFormatter) Format(d *dashboard.Dashboard, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})

	if err := htmlTmpl.Execute(w, buildHTMLData(d)); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	ChartJSURL  string
	GeneratedAt string
	RunID       string
	District    string
	Cards       summaryCards
	Options     []selectOption
	Panels      []dashboard.PanelDef
	Fallbacks   int
	Views       map[string]htmlView
}

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

// summaryCards are the pre-formatted headline figures.
type summaryCards struct {
	Total       string `json:"total"`
	Utilization int    `json:"utilization"`
	TopDistrict string `json:"topDistrict"`
	TopValue    string `json:"topValue"`
}

type htmlView struct {
	Summary summaryCards           `json:"summary"`
	Charts  map[string]*chart.Spec `json:"charts"`
	Skipped map[string]string      `json:"skipped"`
}

func buildHTMLData(d *dashboard.Dashboard) htmlData {
	data := htmlData{
		ChartJSURL:  ChartJSURL,
		GeneratedAt: d.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		RunID:       d.RunID,
		District:    d.District,
		Cards:       cardsFor(d.Headline()),
		Panels:      dashboard.Layout,
		Fallbacks:   d.FallbackCount(),
		Views:       make(map[string]htmlView),
	}
	if data.District == "" {
		data.District = district.All
	}

	for _, name := range d.Districts {
		label := name
		if name == district.All {
			label = "All Districts"
		}
		data.Options = append(data.Options, selectOption{Value: name, Label: label, Selected: name == data.District})
	}

	for _, v := range d.Views() {
		hv := htmlView{
			Summary: cardsFor(v.Summary),
			Charts:  make(map[string]*chart.Spec, len(v.Panels)),
			Skipped: make(map[string]string),
		}
		for _, p := range v.Panels {
			hv.Charts[p.ID] = p.Spec
			if p.Skipped != "" {
				hv.Skipped[p.ID] = p.Skipped
			}
		}
		data.Views[v.District] = hv
	}
	return data
}

func cardsFor(s aggregate.Summary) summaryCards {
	top := s.TopDistrict
	if top == "" {
		top = "-"
	}
	return summaryCards{
		Total:       chart.FormatCount(float64(s.TotalBeneficiaries)),
		Utilization: s.UtilizationPercent,
		TopDistrict: top,
		TopValue:    chart.FormatCount(s.TopDistrictValue) + " beneficiaries",
	}
}
