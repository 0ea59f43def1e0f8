// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package fallback holds the sample datasets substituted for schemes whose
// data cannot be loaded. A Table is built once at startup and handed to the
// loader; it is never modified afterwards.
package fallback

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/schemedash/schemedash/internal/scheme"
	"github.com/schemedash/schemedash/internal/testable"
)

//go:embed fallback.toml
var builtin []byte

// Table is an immutable lookup of scheme id to fallback dataset.
type Table struct {
	records scheme.Mapping
}

var (
	defaultOnce  sync.Once
	defaultTable Table
	defaultErr   error
)

// Default returns the built-in table. The embedded document is parsed once.
func Default() Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(builtin)
	})
	if defaultErr != nil {
		// The embedded document is part of the binary; failing to parse it
		// is a build defect.
		panic(fmt.Sprintf("fallback: embedded table: %v", defaultErr))
	}
	return defaultTable
}

// Parse decodes a TOML table of fallback records keyed by scheme id.
func Parse(data []byte) (Table, error) {
	var records map[string]scheme.Dataset
	if err := toml.Unmarshal(data, &records); err != nil {
		return Table{}, fmt.Errorf("parse fallback table: %w", err)
	}
	t := Table{records: make(scheme.Mapping, len(records))}
	for id, d := range records {
		t.records[id] = d
	}
	return t, nil
}

// LoadFile reads a TOML override file and layers it over the built-in table.
// Records in the file replace built-in records with the same id wholesale.
func LoadFile(fsys testable.FileSystem, path string) (Table, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read fallback file: %w", err)
	}
	override, err := Parse(data)
	if err != nil {
		return Table{}, err
	}
	return Default().With(override), nil
}

// With returns a new table containing t's records overlaid by other's.
func (t Table) With(other Table) Table {
	out := Table{records: make(scheme.Mapping, len(t.records)+len(other.records))}
	for id, d := range t.records {
		out.records[id] = d
	}
	for id, d := range other.records {
		out.records[id] = d
	}
	return out
}

// Lookup returns a copy of the fallback dataset for id. Unknown ids yield the
// empty dataset.
func (t Table) Lookup(id string) scheme.Dataset {
	d, ok := t.records[id]
	if !ok {
		return scheme.Dataset{}
	}
	return d.Clone()
}

// Has reports whether t holds a record for id.
func (t Table) Has(id string) bool {
	_, ok := t.records[id]
	return ok
}

// IDs lists the ids in t in display order.
func (t Table) IDs() []string {
	return scheme.SortedIDs(t.records)
}

// Mapping returns a deep copy of every record in t.
func (t Table) Mapping() scheme.Mapping {
	return t.records.Clone()
}
