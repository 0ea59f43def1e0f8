// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package loader retrieves per-scheme datasets and guarantees a complete
// mapping: any scheme whose dataset cannot be loaded is replaced by its
// fallback record.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/schemedash/schemedash/internal/fallback"
	"github.com/schemedash/schemedash/internal/redact"
	"github.com/schemedash/schemedash/internal/scheme"
)

// DefaultTimeout bounds each dataset fetch.
const DefaultTimeout = 10 * time.Second

// DefaultConcurrency is the number of datasets fetched at once.
const DefaultConcurrency = 4

// Origin records where a loaded dataset came from.
type Origin string

const (
	OriginSource   Origin = "source"
	OriginFallback Origin = "fallback"
)

// LoadError records why a scheme's dataset could not be loaded.
type LoadError struct {
	ID  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s", e.ID, redact.String(e.Err.Error()))
}

func (e *LoadError) Unwrap() error { return e.Err }

// Result is the outcome of loading a single scheme.
type Result struct {
	ID       string
	Dataset  scheme.Dataset
	Origin   Origin
	Err      error // non-nil when Origin is OriginFallback
	Repairs  []error
	Issues   []error // problems left in place, such as duplicate labels
	Duration time.Duration
}

// Report is the outcome of loading a set of schemes.
type Report struct {
	// Mapping holds a dataset for every requested id.
	Mapping scheme.Mapping

	// Results is the per-scheme breakdown, in request order.
	Results []Result

	// Duration is the wall time of the whole load.
	Duration time.Duration
}

// FallbackCount returns how many schemes were served from the fallback table.
func (r *Report) FallbackCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Origin == OriginFallback {
			n++
		}
	}
	return n
}

// Loader fetches datasets from a Source, substituting fallback records.
type Loader struct {
	Source      Source
	Fallback    fallback.Table
	Timeout     time.Duration
	Concurrency int

	// Logger receives load diagnostics. slog.Default() is used when nil.
	Logger *slog.Logger
}

// New returns a Loader with default timeout and concurrency.
func New(src Source, fb fallback.Table) *Loader {
	return &Loader{
		Source:      src,
		Fallback:    fb,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
	}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Load retrieves the dataset for id. It never fails: on any error the
// fallback record is returned instead, and the error is recorded in the
// Result and logged.
func (l *Loader) Load(ctx context.Context, id string) Result {
	start := time.Now()
	log := l.logger().With("scheme", id)

	d, err := l.fetch(ctx, id)
	if err != nil {
		loadErr := &LoadError{ID: id, Err: err}
		log.Warn("dataset load failed, using fallback", "error", loadErr.Error())
		if !l.Fallback.Has(id) {
			log.Warn("no fallback record for scheme")
		}
		fb := l.Fallback.Lookup(id)
		return Result{
			ID:       id,
			Dataset:  fb,
			Origin:   OriginFallback,
			Err:      loadErr,
			Duration: time.Since(start),
		}
	}

	normalized, repairs := scheme.Normalize(d)
	for _, r := range repairs {
		log.Warn("malformed dataset repaired", "error", r)
	}
	issues := scheme.Validate(normalized)
	for _, e := range issues {
		log.Warn("malformed dataset", "error", e)
	}
	log.Debug("dataset loaded", "duration", time.Since(start))

	return Result{
		ID:       id,
		Dataset:  normalized,
		Origin:   OriginSource,
		Repairs:  repairs,
		Issues:   issues,
		Duration: time.Since(start),
	}
}

func (l *Loader) fetch(ctx context.Context, id string) (scheme.Dataset, error) {
	if l.Source == nil {
		return scheme.Dataset{}, fmt.Errorf("no data source configured")
	}
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return l.Source.Fetch(fctx, id)
}

// LoadAll loads every id and assembles the results into a single mapping.
// Loads run concurrently, but the mapping is returned only once all of them
// have finished. The only error is cancellation of ctx.
func (l *Loader) LoadAll(ctx context.Context, ids []string) (*Report, error) {
	start := time.Now()
	results := make([]Result, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	limit := l.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g.SetLimit(limit)

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = l.Load(gctx, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}

	mapping := make(scheme.Mapping, len(ids))
	for _, res := range results {
		mapping[res.ID] = res.Dataset
	}

	report := &Report{
		Mapping:  mapping,
		Results:  results,
		Duration: time.Since(start),
	}
	l.logger().Info("datasets loaded",
		"schemes", len(ids),
		"fallbacks", report.FallbackCount(),
		"duration", report.Duration.Round(time.Millisecond))
	return report, nil
}
