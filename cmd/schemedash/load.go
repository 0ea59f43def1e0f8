package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/config"
	"github.com/schemedash/schemedash/internal/output"
	"github.com/schemedash/schemedash/internal/scheme"
)

var (
	loadStrict  bool
	loadSamples bool
)

// loadCmd fetches scheme datasets and prints them.
var loadCmd = &cobra.Command{
	Use:   "load [ids...]",
	Short: "Load scheme datasets and print them as JSON",
	Long: `Load the datasets for the given schemes (default: every dashboard scheme)
and print the resulting id-to-dataset mapping as JSON.

Schemes that cannot be loaded are replaced by sample data and logged.
With --strict the command exits 2 when some schemes fell back and 3 when
all of them did. With --samples the data source is skipped and the sample
records (built in, or from fallback_file) are printed instead.`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&loadStrict, "strict", false, "exit non-zero when any scheme falls back to sample data")
	loadCmd.Flags().BoolVar(&loadSamples, "samples", false, "print the sample records without contacting the data source")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ids := args
	if len(ids) == 0 {
		ids = scheme.KnownIDs
	}
	for _, id := range ids {
		if !scheme.IsKnown(id) {
			slog.Warn("scheme is not on the dashboard", "scheme", id)
		}
	}

	cfg, err := loadConfig(flagOverrides{})
	if err != nil {
		return err
	}
	if loadSamples {
		return printSamples(cmd, cfg, args)
	}
	l, err := newLoader(cfg)
	if err != nil {
		return err
	}

	report, err := l.LoadAll(cmd.Context(), ids)
	if err != nil {
		return fmt.Errorf("schemedash: load cancelled (%v)", err)
	}
	if err := output.WriteJSON(cmd.OutOrStdout(), report.Mapping); err != nil {
		return err
	}

	slog.Info("load complete",
		"schemes", len(report.Results),
		"fallbacks", report.FallbackCount(),
		"duration", report.Duration)

	if loadStrict {
		if code := fallbackExitCode(report.FallbackCount(), len(report.Results)); code != ExitOK {
			return exitError(code, "")
		}
	}
	return nil
}

// printSamples writes the sample records for ids, or the whole table when
// no ids are given.
func printSamples(cmd *cobra.Command, cfg *config.Config, ids []string) error {
	fb, err := newFallback(cfg)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		slog.Debug("printing sample table", "schemes", fb.IDs())
		return output.WriteJSON(cmd.OutOrStdout(), fb.Mapping())
	}
	m := make(scheme.Mapping, len(ids))
	for _, id := range ids {
		if !fb.Has(id) {
			return exitError(ExitInvalidArgs, "schemedash: no sample data for scheme %q", id)
		}
		m[id] = fb.Lookup(id)
	}
	return output.WriteJSON(cmd.OutOrStdout(), m)
}
