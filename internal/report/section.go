// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package report renders the dashboard as terminal text. Each section reads
// one aspect of a built dashboard and writes a titled block.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/schemedash/schemedash/internal/dashboard"
)

// ErrNoData indicates the dashboard carries nothing for a section to show,
// for example no district breakdown in any loaded scheme.
var ErrNoData = errors.New("no data for section")

// Section is a pluggable report section.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "districts").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze reads the dashboard and prepares internal state for rendering.
	// Returns ErrNoData (wrapped) when there is nothing to render.
	Analyze(d *dashboard.Dashboard) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Built-in sections in display order.
func init() {
	Register(&summarySection{})
	Register(&schemesSection{})
	Register(&districtsSection{})
	Register(&loadsSection{})
}

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
