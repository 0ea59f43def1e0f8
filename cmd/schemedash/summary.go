package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/report"
)

// Summary-specific flag values.
var (
	summaryJSON     bool
	summaryDistrict string
	summarySections string
)

// summaryCmd prints the terminal report.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard summary report",
	Long: `Load every scheme and print the headline figures, the scheme table,
district totals and data sources.

Use --sections to pick sections (summary, schemes, districts, loads).`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print the report as JSON")
	summaryCmd.Flags().StringVarP(&summaryDistrict, "district", "d", "", "restrict the view to one district")
	summaryCmd.Flags().StringVar(&summarySections, "sections", "", "comma-separated list of report sections to include")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	var sections []string
	if summarySections != "" {
		sections = splitList(summarySections)
		if unknown := report.UnknownSections(sections); len(unknown) > 0 {
			return exitError(ExitInvalidArgs, "schemedash: unknown section(s) %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
		}
	}

	cfg, err := loadConfig(flagOverrides{District: summaryDistrict})
	if err != nil {
		return err
	}
	d, err := buildDashboard(cmd, cfg, newPresenter(cfg))
	if err != nil {
		return err
	}

	if summaryJSON {
		return report.RenderJSON(d, sections, cmd.OutOrStdout())
	}
	return report.Render(d, sections, cmd.OutOrStdout())
}

// splitList splits a comma-separated flag value, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
