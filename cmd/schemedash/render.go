package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/output"
)

// Render-specific flag values.
var (
	renderFormat   string
	renderOutput   string
	renderDistrict string
	renderSeed     uint64
)

// defaultRenderFormat is used when neither --format nor output_format is set.
const defaultRenderFormat = "html"

// renderCmd writes the dashboard in one of the output formats.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the dashboard as HTML, JSON, Markdown or chart images",
	Long: `Load every scheme and write the dashboard.

html, json and markdown write a single document to --output or stdout.
png and svg write one image per chart into the --output directory.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: "+strings.Join(output.FormatNames(), ", ")+" (default "+defaultRenderFormat+")")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file, or directory for image formats (default: stdout)")
	renderCmd.Flags().StringVarP(&renderDistrict, "district", "d", "", "initial district view")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "seed for generated colors")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagOverrides{
		District:     renderDistrict,
		OutputFormat: renderFormat,
		Seed:         seedFlag(cmd, renderSeed),
	})
	if err != nil {
		return err
	}
	format := cfg.OutputFormat
	if format == "" {
		format = defaultRenderFormat
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "schemedash: %v", err)
	}
	dirFormatter, isDir := formatter.(output.DirectoryFormatter)
	if isDir && renderOutput == "" {
		return exitError(ExitInvalidArgs, "schemedash: %s format requires --output (-o) directory", format)
	}

	d, err := buildDashboard(cmd, cfg, newPresenter(cfg))
	if err != nil {
		return err
	}

	switch {
	case isDir:
		if err := dirFormatter.FormatDir(d, renderOutput); err != nil {
			return fmt.Errorf("schemedash: rendering failed (%v)", err)
		}
	case renderOutput != "":
		f, createErr := cmdFS.Create(renderOutput)
		if createErr != nil {
			return fmt.Errorf("schemedash: cannot create output file %q (%v)", renderOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		if err := formatter.Format(d, f); err != nil {
			return fmt.Errorf("schemedash: rendering failed (%v)", err)
		}
	default:
		if err := formatter.Format(d, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("schemedash: rendering failed (%v)", err)
		}
	}

	slog.Info("render complete",
		"format", format,
		"district", d.District,
		"panels", len(d.Panels),
		"skipped", len(d.Skipped()))
	return nil
}
