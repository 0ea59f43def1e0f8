// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_BasicRender(t *testing.T) {
	tbl := NewTable(
		Column{Header: "District"},
		Column{Header: "Count", Align: AlignRight},
	)
	tbl.AddRow("Bhopal", "3,200")
	tbl.AddRow("Jabalpur", "2,100")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	assert.Equal(t, ""+
		"  District  Count\n"+
		"  --------  -----\n"+
		"  Bhopal    3,200\n"+
		"  Jabalpur  2,100\n", buf.String())
}

func TestTable_RightAlignPadsLeft(t *testing.T) {
	tbl := NewTable(Column{Header: "N", Align: AlignRight})
	tbl.AddRow("1")
	tbl.AddRow("100")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "    1", lines[2])
	assert.Equal(t, "  100", lines[3])
}

func TestTable_MissingValues(t *testing.T) {
	tbl := NewTable(
		Column{Header: "A"},
		Column{Header: "B"},
		Column{Header: "C"},
	)
	tbl.AddRow("only-one")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "only-one")
}

func TestTable_ExtraValues(t *testing.T) {
	tbl := NewTable(Column{Header: "A"})
	tbl.AddRow("one", "extra-ignored")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "one")
	assert.NotContains(t, buf.String(), "extra-ignored")
}

func TestTable_NoColumns(t *testing.T) {
	tbl := NewTable()

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Empty(t, buf.String())
}

func TestTable_WidthCountsRunes(t *testing.T) {
	tbl := NewTable(Column{Header: "Name"}, Column{Header: "X"})
	tbl.AddRow("भोपाल", "1")
	tbl.AddRow("Indore", "2")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	// "भोपाल" is 5 runes, padded to the 6-rune "Indore".
	assert.Equal(t, "  भोपाल   1", lines[2])
	assert.Equal(t, "  Indore  2", lines[3])
}

func TestTable_ColorFuncAppliedAfterPadding(t *testing.T) {
	tbl := NewTable(
		Column{Header: "S", Color: func(v string) string { return "<" + v + ">" }},
		Column{Header: "T"},
	)
	tbl.AddRow("ab", "x")
	tbl.AddRow("abcd", "y")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	assert.Equal(t, "  <ab>    x", lines[2])
	assert.Equal(t, "  <abcd>  y", lines[3])
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
