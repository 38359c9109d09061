// Package console makes successive renders of a text block appear as in-place
// updates. A Painter remembers how many physical terminal lines its last
// block occupied (wrapping included) and erases exactly that region before
// writing the next block.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

// ANSI control sequences used for the erase strategies.
const (
	escCursorPrevLine = "\033[F" // CPL: cursor to beginning of previous line
	escEraseLine      = "\033[K" // EL: erase from cursor to end of line
	escCursorHome     = "\033[H" // CUP: cursor to top-left
	escEraseDisplay   = "\033[2J"
)

// DefaultTerminalColumns is assumed when the output is not a terminal.
const DefaultTerminalColumns = 160

// ResetMode selects the erase strategy used before repainting. The choice is
// declared by the caller, never detected at runtime.
type ResetMode string

const (
	// ResetModeLineCount erases the previous block with one
	// cursor-up-and-erase operation per physical line. Correct on terminals
	// that count wrapped lines consistently (documented Linux behavior).
	ResetModeLineCount ResetMode = "line_count"

	// ResetModeTerminalChange clears the whole screen instead of counting
	// lines. Intended for terminals where wrapped long lines are miscounted
	// after a width change (documented Windows caveat).
	ResetModeTerminalChange ResetMode = "terminal_change"
)

// ParseResetMode maps a configuration string to a ResetMode.
func ParseResetMode(s string) (ResetMode, error) {
	switch ResetMode(s) {
	case ResetModeLineCount, "":
		return ResetModeLineCount, nil
	case ResetModeTerminalChange:
		return ResetModeTerminalChange, nil
	}
	return "", fmt.Errorf("unknown reset mode %q", s)
}

// terminalWidthImpl probes the real terminal width. Tests swap it out via
// SetWidthFn to exercise wrap counting without a TTY.
func terminalWidthImpl() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultTerminalColumns
}

// Painter owns the paint state for one table region. Each Painter is
// independent; two tables with their own Painters can coexist as long as they
// write to different regions.
type Painter struct {
	out     io.Writer
	mode    ResetMode
	lines   int
	widthFn func() int
}

// NewPainter returns a Painter writing to out with the given erase strategy.
func NewPainter(out io.Writer, mode ResetMode) *Painter {
	if out == nil {
		out = os.Stdout
	}
	if mode == "" {
		mode = ResetModeLineCount
	}
	return &Painter{out: out, mode: mode, widthFn: terminalWidthImpl}
}

// Lines returns the physical line count recorded by the last Repaint.
func (p *Painter) Lines() int { return p.lines }

// SetWidthFn replaces the terminal width probe and returns a restore
// function. Use in tests to pin the wrap width.
func (p *Painter) SetWidthFn(fn func() int) (restore func()) {
	orig := p.widthFn
	p.widthFn = fn
	return func() { p.widthFn = orig }
}

// Repaint erases the previously painted region, writes block, and records the
// new physical line count.
func (p *Painter) Repaint(block string) error {
	if err := p.erase(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.out, block); err != nil {
		return err
	}
	p.lines = p.PhysicalLines(block)
	return nil
}

// Append writes block without erasing anything and hands the region back to
// the caller: the paint state is zeroed so a later Repaint starts fresh.
func (p *Painter) Append(block string) error {
	if _, err := fmt.Fprintln(p.out, block); err != nil {
		return err
	}
	p.lines = 0
	return nil
}

// Reset forgets the painted region without touching the terminal.
func (p *Painter) Reset() { p.lines = 0 }

func (p *Painter) erase() error {
	if p.lines == 0 {
		return nil
	}
	switch p.mode {
	case ResetModeTerminalChange:
		if _, err := fmt.Fprint(p.out, escCursorHome+escEraseDisplay); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprint(p.out, strings.Repeat(escCursorPrevLine+escEraseLine, p.lines)); err != nil {
			return err
		}
	}
	p.lines = 0
	return nil
}

// PhysicalLines counts the terminal lines block occupies once printed: every
// logical line contributes ceil(width / terminal columns), minimum one.
func (p *Painter) PhysicalLines(block string) int {
	cols := p.widthFn()
	if cols <= 0 {
		cols = DefaultTerminalColumns
	}
	total := 0
	for _, line := range strings.Split(block, "\n") {
		w := lipgloss.Width(line)
		n := 1
		if w > cols {
			n = (w + cols - 1) / cols
		}
		total += n
	}
	return total
}
