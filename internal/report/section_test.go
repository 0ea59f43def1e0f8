package report

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemedash/schemedash/internal/dashboard"
)

// stubSection renders "<name> body" and fails Analyze with err.
type stubSection struct {
	name string
	desc string
	err  error
}

func (s *stubSection) Name() string                         { return s.name }
func (s *stubSection) Description() string                  { return s.desc }
func (s *stubSection) Analyze(_ *dashboard.Dashboard) error { return s.err }
func (s *stubSection) Render(w io.Writer) error {
	_, err := io.WriteString(w, s.name+" body\n")
	return err
}

func TestRegistry(t *testing.T) {
	resetForTesting()
	defer restoreSections()

	for _, n := range []string{"loads", "alpha", "summary"} {
		Register(&stubSection{name: n, desc: n + " section"})
	}

	assert.Equal(t, []string{"loads", "alpha", "summary"}, List(), "registration order is kept")
	require.NotNil(t, Get("alpha"))
	assert.Equal(t, "alpha section", Get("alpha").Description())
	assert.Nil(t, Get("districts"))

	names := List()
	names[0] = "mutated"
	assert.Equal(t, "loads", List()[0], "List returns a copy")

	assert.PanicsWithValue(t, "report section already registered: alpha", func() {
		Register(&stubSection{name: "alpha"})
	})
}

func TestBuiltinSections(t *testing.T) {
	require.Equal(t, []string{"summary", "schemes", "districts", "loads"}, List())
	for _, name := range List() {
		assert.NotEmpty(t, Get(name).Description(), name)
	}
}
