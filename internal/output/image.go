// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/schemedash/schemedash/internal/chart"
	"github.com/schemedash/schemedash/internal/dashboard"
	"github.com/schemedash/schemedash/internal/testable"
)

func init() {
	RegisterFormatter(NewImageFormatter(chart.ImagePNG))
	RegisterFormatter(NewImageFormatter(chart.ImageSVG))
}

// ImageFormatter writes one static image per drawn panel into a directory.
type ImageFormatter struct {
	format chart.ImageFormat

	// FS is the file system written to. testable.DefaultFS when nil.
	FS testable.FileSystem

	// Logger receives skipped-panel notices. slog.Default() when nil.
	Logger *slog.Logger
}

// Compile-time interface checks.
var (
	_ Formatter          = (*ImageFormatter)(nil)
	_ DirectoryFormatter = (*ImageFormatter)(nil)
)

// NewImageFormatter returns an ImageFormatter for the given encoding.
func NewImageFormatter(format chart.ImageFormat) *ImageFormatter {
	return &ImageFormatter{format: format}
}

// Name returns the format name.
func (f *ImageFormatter) Name() string {
	return string(f.format)
}

// Format returns an error directing users to use --output (-o) with image formats.
func (f *ImageFormatter) Format(_ *dashboard.Dashboard, _ io.Writer) error {
	return fmt.Errorf("%s format requires --output (-o) flag to specify output directory", f.format)
}

// FormatDir writes {panel-id}.{ext} into dir for every panel that has an
// image rendering. Skipped panels and kinds without an image rendering are
// logged and left out.
func (f *ImageFormatter) FormatDir(d *dashboard.Dashboard, dir string) error {
	fsys := f.FS
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := fsys.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	written := 0
	for _, p := range d.Panels {
		if p.Spec == nil {
			logger.Info("panel not rendered", "panel", p.ID, "reason", p.Skipped)
			continue
		}

		var buf bytes.Buffer
		err := chart.RenderImage(&buf, p.Kind, *p.Spec, f.format)
		if errors.Is(err, chart.ErrUnsupportedImage) || errors.Is(err, chart.ErrNoSeries) {
			logger.Info("panel not rendered", "panel", p.ID, "reason", err.Error())
			continue
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", p.ID, err)
		}

		path := filepath.Join(dir, p.ID+"."+string(f.format))
		if err := fsys.WriteFile(path, buf.Bytes(), 0o600); err != nil { //nolint:gosec // user-specified output path
			return fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	logger.Debug("images written", "dir", dir, "count", written)
	return nil
}
