// Package render serializes table state into a plain-text block. It is a pure
// layout layer: no terminal handling, no I/O, and byte-identical output for
// identical input.
package render

import (
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

// Column describes one rendered column: the display label and the width every
// cell in the column is packed to. Width is computed upstream and already
// covers the label, all cell values, and any pre-sizing baseline.
type Column struct {
	Label string
	Width int
}

// Row holds the stringified cells for one sample, in column order, plus any
// sidecar info lines printed below the row.
type Row struct {
	Cells []string
	Info  []string
}

// Table is the full input to Block.
type Table struct {
	Title     string
	ShowTitle bool
	Columns   []Column
	Rows      []Row
}

// Block renders the table as a text block using only '|', '-', and spaces.
//
//	------------
//	| <title>  |
//	--------------------
//	| h1 | h2 | h3     |
//	--------------------
//	| 1  | 1  | 1      |
//	--------------------
//
// The rule between title and header spans the wider of the two blocks. Info
// lines of a row appear below its closing rule, followed by another rule.
func Block(t Table) string {
	var b strings.Builder

	titleStr := ""
	if t.ShowTitle && t.Title != "" {
		titleStr = "| " + t.Title + " |"
		b.WriteString(rule(lipgloss.Width(titleStr)))
		b.WriteString("\n")
		b.WriteString(titleStr)
		b.WriteString("\n")
	}

	headerStr := line(labels(t.Columns), widths(t.Columns))
	b.WriteString(rule(intMax(lipgloss.Width(headerStr), lipgloss.Width(titleStr))))
	b.WriteString("\n")
	b.WriteString(headerStr)
	b.WriteString("\n")

	rowRule := rule(lipgloss.Width(headerStr))
	b.WriteString(rowRule)

	for _, row := range t.Rows {
		b.WriteString("\n")
		b.WriteString(line(row.Cells, widths(t.Columns)))
		b.WriteString("\n")
		b.WriteString(rowRule)
		if len(row.Info) > 0 {
			for _, info := range row.Info {
				b.WriteString("\n")
				b.WriteString(info)
			}
			b.WriteString("\n")
			b.WriteString(rowRule)
		}
	}

	return b.String()
}

// line packs cells into "| c1 | c2 |" form, each cell padded to its column
// width. Missing cells render as empty placeholders.
func line(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(padRight(cell, w))
		b.WriteString(" |")
	}
	return b.String()
}

func rule(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat("-", width)
}

func labels(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}

func widths(cols []Column) []int {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = c.Width
	}
	return out
}

// padRight pads s with spaces to the requested display width. Values wider
// than the column are left intact; the width calculation upstream grows
// columns instead of truncating data.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
