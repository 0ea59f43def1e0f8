// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Palette is the fixed set of default series colors, used in order.
var Palette = []string{
	"#0f4c81", "#4b8bbe", "#ff6b6b", "#ffb347", "#2ecc71",
	"#9b59b6", "#e74c3c", "#3498db", "#f1c40f", "#1abc9c",
}

// ColorSource supplies hues for colors beyond the fixed palette.
type ColorSource interface {
	// Hue returns a hue in [0, 360).
	Hue() int
}

// SeededColors is a ColorSource driven by a PCG generator. It is safe for
// concurrent use.
type SeededColors struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededColors returns a ColorSource that yields the same hues for the
// same seed.
func NewSeededColors(seed uint64) *SeededColors {
	return &SeededColors{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededColors returns a ColorSource seeded from the clock.
func NewTimeSeededColors() *SeededColors {
	return NewSeededColors(uint64(time.Now().UnixNano()))
}

// Hue implements ColorSource.
func (s *SeededColors) Hue() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(360)
}

// Colors returns n colors: the palette first, then generated HSL colors
// drawn from src.
func Colors(n int, src ColorSource) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, 0, n)
	for i := 0; i < n && i < len(Palette); i++ {
		out = append(out, Palette[i])
	}
	for len(out) < n {
		out = append(out, HSL(src.Hue()))
	}
	return out
}

// HSL formats a generated color for hue h.
func HSL(h int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", h)
}
