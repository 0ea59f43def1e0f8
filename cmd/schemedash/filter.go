package main

import (
	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/output"
	"github.com/schemedash/schemedash/internal/scheme"
)

// filterCmd prints the mapping narrowed to one district.
var filterCmd = &cobra.Command{
	Use:   "filter <district>",
	Short: "Print the scheme data for one district as JSON",
	Long: `Load every scheme, keep the schemes that report the given district and
reduce each to that district's figures. "all" prints the full mapping.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagOverrides{District: args[0]})
	if err != nil {
		return err
	}
	d, err := buildDashboard(cmd, cfg, newPresenter(cfg))
	if err != nil {
		return err
	}
	view := d.View
	if view == nil {
		view = scheme.Mapping{}
	}
	return output.WriteJSON(cmd.OutOrStdout(), view)
}
