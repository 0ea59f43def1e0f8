// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/schemedash/schemedash/internal/loader"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// ColorOrigin colors a load origin: source data green, sample data yellow.
func ColorOrigin(val string) string {
	switch loader.Origin(val) {
	case loader.OriginSource:
		return colorGreen.Sprint(val)
	case loader.OriginFallback:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// ColorUtilization colors a "N%" utilization cell. Full capacity is green,
// under half is red.
func ColorUtilization(val string) string {
	n, err := strconv.Atoi(strings.TrimSuffix(val, "%"))
	if err != nil {
		return val
	}
	switch {
	case n >= 100:
		return colorGreen.Sprint(val)
	case n < 50:
		return colorRed.Sprint(val)
	default:
		return colorYellow.Sprint(val)
	}
}

// ColorStatus colors a panel status: "drawn" green, anything else yellow.
func ColorStatus(val string) string {
	if val == "drawn" {
		return colorGreen.Sprint(val)
	}
	return colorYellow.Sprint(val)
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
