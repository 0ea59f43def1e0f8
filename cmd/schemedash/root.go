package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	schemedashlog "github.com/schemedash/schemedash/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logJSON    bool
	configPath string

	// Data source overrides, layered over the config files.
	baseURL string
	dataDir string
)

// rootCmd is the base command for schemedash.
var rootCmd = &cobra.Command{
	Use:   "schemedash",
	Short: "Government scheme statistics dashboard",
	Long: `Schemedash loads beneficiary statistics for the state's welfare schemes,
summarizes them, filters them by district and lays them out as charts.

Data comes from a web server (--base-url) or a local directory (--data-dir).
Schemes whose data cannot be loaded show built-in sample data instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		schemedashlog.Setup(verbose, quiet, logJSON)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&logJSON, "log-json", false, "write logs as JSON lines")
	pf.StringVar(&configPath, "config", "", "config file (default: ./.schemedash.yaml over the global config)")
	pf.StringVar(&baseURL, "base-url", "", "fetch datasets from this server")
	pf.StringVar(&dataDir, "data-dir", "", "read datasets from this directory")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(districtsCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
