package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/config"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/district"
	"github.com/schemedash/schemedash/internal/fallback"
	"github.com/schemedash/schemedash/internal/loader"
)

// flagOverrides holds per-command flag values that layer over the config
// files. Zero values leave the file settings alone.
type flagOverrides struct {
	District     string
	OutputFormat string
	Seed         *uint64
}

// loadConfig reads the global config, then --config or ./.schemedash.yaml
// over it, then the CLI flags over both, and validates the result.
func loadConfig(flags flagOverrides) (*config.Config, error) {
	var base *config.Config
	var err error
	if configPath != "" {
		if _, statErr := cmdFS.Stat(configPath); statErr != nil {
			return nil, exitError(ExitInvalidArgs, "schemedash: config file %q not found", configPath)
		}
		var global, file *config.Config
		if global, err = config.LoadGlobal(); err == nil {
			if file, err = config.LoadFile(configPath); err == nil {
				base = config.Merge(global, file)
			}
		}
	} else {
		base, err = config.LoadLayered(".")
	}
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "schemedash: failed to load config (%v)", err)
	}

	cfg := config.Merge(base, &config.Config{
		Source:       config.SourceConfig{BaseURL: baseURL, Dir: dataDir},
		District:     flags.District,
		OutputFormat: flags.OutputFormat,
		ColorSeed:    flags.Seed,
	})
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "schemedash: %v", err)
	}
	return cfg, nil
}

// newSource returns the configured data source, or nil when none is set.
func newSource(cfg *config.Config) (loader.Source, error) {
	timeout, err := cfg.Source.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	ttl, err := cfg.Source.CacheTTLDuration()
	if err != nil {
		return nil, err
	}

	var src loader.Source
	switch {
	case cfg.Source.BaseURL != "":
		client := &http.Client{Timeout: loader.DefaultTimeout}
		if timeout > 0 {
			client.Timeout = timeout
		}
		src = &loader.HTTPSource{BaseURL: cfg.Source.BaseURL, PathPattern: cfg.Source.PathPattern, Client: client}
	case cfg.Source.Dir != "":
		src = &loader.FileSource{Dir: cfg.Source.Dir, PathPattern: cfg.Source.PathPattern, FS: cmdFS}
	default:
		return nil, nil
	}
	if ttl > 0 {
		src = loader.NewCachingSource(src, ttl)
	}
	return src, nil
}

// newLoader builds a loader from cfg. Without a source every scheme is
// served from the fallback table.
func newLoader(cfg *config.Config) (*loader.Loader, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "schemedash: %v", err)
	}

	fb, err := newFallback(cfg)
	if err != nil {
		return nil, err
	}

	if src == nil {
		slog.Debug("no data source configured; using sample data")
	}
	l := loader.New(src, fb)
	if t, _ := cfg.Source.TimeoutDuration(); t > 0 {
		l.Timeout = t
	}
	if cfg.Concurrency > 0 {
		l.Concurrency = cfg.Concurrency
	}
	return l, nil
}

// newFallback returns the built-in sample table, layered under
// fallback_file when one is configured.
func newFallback(cfg *config.Config) (fallback.Table, error) {
	if cfg.FallbackFile == "" {
		return fallback.Default(), nil
	}
	fb, err := fallback.LoadFile(cmdFS, cfg.FallbackFile)
	if err != nil {
		return fallback.Table{}, exitError(ExitInvalidArgs, "schemedash: %v", err)
	}
	return fb, nil
}

// newPresenter returns a presenter with reproducible colors when a seed is
// configured.
func newPresenter(cfg *config.Config) *chart.Presenter {
	if cfg.ColorSeed != nil {
		return &chart.Presenter{Colors: chart.NewSeededColors(*cfg.ColorSeed)}
	}
	return &chart.Presenter{}
}

// buildDashboard loads every scheme and assembles the dashboard for cfg.
func buildDashboard(cmd *cobra.Command, cfg *config.Config, presenter *chart.Presenter) (*dashboard.Dashboard, error) {
	l, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	d, err := dashboard.Build(cmd.Context(), dashboard.Options{
		Loader:    l,
		District:  cfg.District,
		Capacity:  cfg.Capacity,
		Presenter: presenter,
		Logger:    slog.Default(),
	})
	if err != nil {
		var ude *district.UnknownDistrictError
		if errors.As(err, &ude) {
			return nil, exitError(ExitInvalidArgs, "schemedash: %v", err)
		}
		return nil, fmt.Errorf("schemedash: %w", err)
	}
	return d, nil
}

// seedFlag returns the --seed value when the flag was given.
func seedFlag(cmd *cobra.Command, v uint64) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return &v
}
