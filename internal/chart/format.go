// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"math"
	"strconv"
	"strings"
)

// FormatTick renders an axis value compactly: millions as "1.3M",
// thousands as "2.5K", anything smaller as the plain number.
func FormatTick(v float64) string {
	switch {
	case v >= 1e6:
		return oneDecimal(v/1e6) + "M"
	case v >= 1e3:
		return oneDecimal(v/1e3) + "K"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// oneDecimal rounds half away from zero to one decimal place.
func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// FormatCount groups digits the Indian way: the last three, then pairs
// (6,82,500). Fractions keep up to three decimals.
func FormatCount(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")

	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		whole = strings.Join(append(parts, tail), ",")
	}
	if frac != "" {
		return sign + whole + "." + frac
	}
	return sign + whole
}
