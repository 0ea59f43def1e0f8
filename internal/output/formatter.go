// Package output defines the Formatter interface for writing an assembled
// dashboard in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/schemedash/schemedash/internal/dashboard"
)

// Formatter writes a dashboard to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "html", "markdown").
	Name() string

	// Format writes the dashboard to w.
	Format(d *dashboard.Dashboard, w io.Writer) error
}

// DirectoryFormatter extends Formatter for formats that produce a directory
// of files (one image per panel) instead of a single stream.
type DirectoryFormatter interface {
	Formatter
	FormatDir(d *dashboard.Dashboard, dir string) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, strings.Join(formatNames(), ", "))
	}
	return f, nil
}

// FormatNames returns the registered format names in sorted order.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return formatNames()
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// formatNames expects fmtMu to be held.
func formatNames() []string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
