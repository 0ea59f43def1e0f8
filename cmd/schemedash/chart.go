package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/output"
)

// Chart-specific flag values.
var (
	chartKind     string
	chartLabel    string
	chartSeed     uint64
	chartDistrict string
)

// chartCmd prints one panel's chart specification.
var chartCmd = &cobra.Command{
	Use:   "chart <scheme-id|comparison>",
	Short: "Print a chart specification as JSON",
	Long: `Print the Chart.js configuration for one dashboard panel.

The argument is a scheme id (laptop, uniform, ...), a panel id
(laptop-chart, ...) or "comparison". --kind draws the scheme with a different
chart type and --label replaces the title. --seed fixes the generated
colors so the output is reproducible.`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartKind, "kind", "k", "", "chart type: "+strings.Join(kindNames(), ", "))
	chartCmd.Flags().StringVarP(&chartLabel, "label", "l", "", "chart title (default: the panel title)")
	chartCmd.Flags().Uint64Var(&chartSeed, "seed", 0, "seed for generated colors")
	chartCmd.Flags().StringVarP(&chartDistrict, "district", "d", "", "restrict the data to one district")
}

func kindNames() []string {
	kinds := chart.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func runChart(cmd *cobra.Command, args []string) error {
	def, ok := dashboard.LookupPanel(args[0])
	if !ok {
		return exitError(ExitInvalidArgs, "schemedash: unknown chart %q", args[0])
	}
	kind := def.Kind
	if chartKind != "" {
		k, err := chart.ParseKind(chartKind)
		if err != nil {
			return exitError(ExitInvalidArgs, "schemedash: %v", err)
		}
		if (k == chart.KindComparison) != (def.Kind == chart.KindComparison) {
			return exitError(ExitInvalidArgs, "schemedash: kind %q cannot draw %s", k, def.ID)
		}
		kind = k
	}
	label := def.Title
	if chartLabel != "" {
		label = chartLabel
	}

	cfg, err := loadConfig(flagOverrides{District: chartDistrict, Seed: seedFlag(cmd, chartSeed)})
	if err != nil {
		return err
	}
	presenter := newPresenter(cfg)
	d, err := buildDashboard(cmd, cfg, presenter)
	if err != nil {
		return err
	}

	var spec chart.Spec
	if kind == chart.KindComparison {
		spec, err = presenter.Comparison(d.View)
		if err == nil && chartLabel != "" {
			spec.Options.Plugins.Title.Text = label
		}
	} else {
		ds, found := d.View[def.SchemeID]
		if !found {
			return fmt.Errorf("schemedash: no %s data for district %q", def.SchemeID, d.District)
		}
		spec, err = presenter.Spec(kind, ds, label)
	}
	if errors.Is(err, chart.ErrNoSeries) {
		return fmt.Errorf("schemedash: %s has nothing to draw (%v)", def.ID, err)
	}
	if err != nil {
		return fmt.Errorf("schemedash: %w", err)
	}
	return output.WriteJSON(cmd.OutOrStdout(), spec)
}
