package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/output"
)

var districtsJSON bool

// districtsCmd lists the district selector options.
var districtsCmd = &cobra.Command{
	Use:   "districts",
	Short: "List the districts the dashboard can be filtered by",
	Long: `List the district selector options: "all", then every district named by
any loaded scheme, in first-seen order.`,
	Args: cobra.NoArgs,
	RunE: runDistricts,
}

func init() {
	districtsCmd.Flags().BoolVar(&districtsJSON, "json", false, "print the list as a JSON array")
}

func runDistricts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagOverrides{})
	if err != nil {
		return err
	}
	// The selector is built from the full mapping regardless of the
	// configured district.
	cfg.District = ""
	d, err := buildDashboard(cmd, cfg, newPresenter(cfg))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if districtsJSON {
		return output.WriteJSON(w, d.Districts)
	}
	for _, name := range d.Districts {
		fmt.Fprintln(w, name)
	}
	return nil
}
