// Package stattab maintains a growing table of periodic key/value samples and
// repaints it in place in the terminal, so the table appears to update rather
// than scroll. It is a library: construct a Collector, feed it samples with
// Add/Update, and either let it paint automatically or pull the rendered
// block with GetTable and hand it to your own sink.
//
// A Collector is not safe for concurrent use; calls must be issued serially
// by a single logical writer. Nothing else may write to the terminal between
// paints, or the erase calculation is corrupted.
package stattab

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/stattab/internal/window"
	"github.com/oakwood-commons/stattab/pkg/console"
	"github.com/oakwood-commons/stattab/pkg/refs"
	"github.com/oakwood-commons/stattab/pkg/render"
)

const (
	// InfoKey is the reserved sample key carrying the sidecar info line. It
	// is not a header: its value prints below the row, unboxed.
	InfoKey = "info"

	// DefaultTitle labels the mini-table above the data block.
	DefaultTitle = "STATISTICS"
)

// Sample maps header keys (plus the reserved "info" key) to values. Values
// may be anything stringifiable; they are converted to display text exactly
// once, on Add/Update.
type Sample map[string]any

// row is one collected sample snapshot. cells is aligned with header order
// and always has one entry per header.
type row struct {
	cells []string
	info  []string
}

// Collector owns the table state, the reference registry, and the paint
// state for one table region.
type Collector struct {
	headers  *headerSet
	rows     []row
	title    string
	registry *refs.Registry
	painter  *console.Painter

	printTitle bool
	printStats bool
	window     window.Config
	resetMode  console.ResetMode
	out        io.Writer
	format     func(any) string
	log        *logr.Logger
}

// New constructs a Collector for the given ordered header set. It fails with
// ErrNoHeaders on an empty set and *DuplicateHeaderError on a repeated key.
func New(headers []Header, opts ...Option) (*Collector, error) {
	hs, err := newHeaderSet(headers)
	if err != nil {
		return nil, err
	}
	noop := logr.Discard()
	c := &Collector{
		headers:    hs,
		title:      DefaultTitle,
		registry:   refs.NewRegistry(),
		printTitle: true,
		printStats: true,
		resetMode:  console.ResetModeLineCount,
		out:        os.Stdout,
		format:     func(v any) string { return fmt.Sprint(v) },
		log:        &noop,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.window.Validate(); err != nil {
		return nil, fmt.Errorf("row window: %w", err)
	}
	c.painter = console.NewPainter(c.out, c.resetMode)
	return c, nil
}

// Title returns the current table title.
func (c *Collector) Title() string { return c.title }

// SetTitle replaces the table title. An empty title suppresses the title
// block on the next paint.
func (c *Collector) SetTitle(title string) { c.title = title }

// RowCount returns the number of collected rows.
func (c *Collector) RowCount() int { return len(c.rows) }

// Headers returns a snapshot of the current headers in column order.
func (c *Collector) Headers() []Header {
	out := make([]Header, c.headers.len())
	for i, col := range c.headers.order {
		out[i] = Header{Key: col.key, Label: col.label}
	}
	return out
}

// Painter exposes the redraw controller, mainly so callers and tests can pin
// the terminal width probe or inspect the recorded line count.
func (c *Collector) Painter() *console.Painter { return c.painter }

// RenameHeaders replaces display labels for the given keys. Keys and column
// order never change. An unknown key fails with *UnknownHeaderError and
// nothing is applied.
func (c *Collector) RenameHeaders(labels map[string]string) error {
	return c.headers.rename(labels)
}

// CreateReference binds headerKey to an external readable location. Later
// Add/Update calls pull the binding's current value for any key the sample
// does not supply. Rebinding requires force; without it the call fails with
// *refs.DuplicateReferenceError.
func (c *Collector) CreateReference(headerKey string, b refs.Binding, force bool) error {
	if !c.headers.has(headerKey) {
		return &UnknownHeaderError{Key: headerKey}
	}
	return c.registry.Bind(headerKey, b, force)
}

// Add appends one new row. A nil sample pulls every value from the reference
// registry; otherwise the sample is completed from the registry for bound
// keys it does not mention, and headers absent from both render as empty
// cells. Unknown sample keys fail with *UnknownHeaderError before any state
// changes. Resolution failures do not abort: the row is still added with the
// readable subset and the batched error is returned.
func (c *Collector) Add(sample Sample) error {
	resolved, info, resErr := c.resolveSample(sample)
	if err := c.checkKeys(resolved); err != nil {
		return err
	}

	cells := make([]string, c.headers.len())
	for i, col := range c.headers.order {
		if v, ok := resolved[col.key]; ok {
			text := c.format(v)
			cells[i] = text
			c.headers.grow(col.key, lipgloss.Width(text))
		}
	}
	r := row{cells: cells}
	if info != "" {
		r.info = append(r.info, info)
	}
	c.rows = append(c.rows, r)
	c.log.V(1).Info("row added", "rows", len(c.rows))

	c.autoPaint()
	return resErr
}

// Update mutates the most recently added row: only the keys present in the
// resolved sample are overwritten, earlier rows are never touched. An "info"
// value appends an extra info line to the row. Fails with ErrNoRow before
// the first Add.
func (c *Collector) Update(sample Sample) error {
	if len(c.rows) == 0 {
		return ErrNoRow
	}
	resolved, info, resErr := c.resolveSample(sample)
	if err := c.checkKeys(resolved); err != nil {
		return err
	}

	last := &c.rows[len(c.rows)-1]
	for key, v := range resolved {
		i, ok := c.headers.index(key)
		if !ok {
			continue
		}
		text := c.format(v)
		last.cells[i] = text
		c.headers.grow(key, lipgloss.Width(text))
	}
	if info != "" {
		last.info = append(last.info, info)
	}

	c.autoPaint()
	return resErr
}

// ResizeTableByStat folds the stringified widths of a hypothetical sample
// into the width baseline without adding a row, so the first real paint
// already shows the eventual column widths.
func (c *Collector) ResizeTableByStat(sample Sample) error {
	for key := range sample {
		if key == InfoKey {
			continue
		}
		if !c.headers.has(key) {
			return &UnknownHeaderError{Key: key}
		}
	}
	for key, v := range sample {
		if key == InfoKey {
			continue
		}
		c.headers.grow(key, lipgloss.Width(c.format(v)))
	}
	return nil
}

// GetTable always returns the current rendered text block. When showTable is
// true the block is also written out: a regular call erases the previously
// painted region first, while isLastStat performs a final non-erasing append
// and hands the region back to the caller.
func (c *Collector) GetTable(showTable, isLastStat bool) string {
	text := c.renderBlock()
	if showTable {
		var err error
		if isLastStat {
			err = c.painter.Append(text)
		} else {
			err = c.painter.Repaint(text)
		}
		if err != nil {
			c.log.Error(err, "paint failed")
		}
	}
	return text
}

// resolveSample splits off the info value and completes the sample from the
// reference registry for bound keys the caller did not supply. Per-key
// resolution failures are batched; the readable subset still resolves.
func (c *Collector) resolveSample(sample Sample) (map[string]any, string, error) {
	resolved := make(map[string]any, len(sample))
	info := ""
	for k, v := range sample {
		if k == InfoKey {
			info = c.format(v)
			continue
		}
		resolved[k] = v
	}

	resErr := c.registry.ResolveMissing(resolved)
	if resErr != nil {
		c.log.Error(resErr, "reference resolution incomplete")
	}
	return resolved, info, resErr
}

func (c *Collector) checkKeys(resolved map[string]any) error {
	for key := range resolved {
		if !c.headers.has(key) {
			return &UnknownHeaderError{Key: key}
		}
	}
	return nil
}

func (c *Collector) autoPaint() {
	if !c.printStats {
		return
	}
	if err := c.painter.Repaint(c.renderBlock()); err != nil {
		c.log.Error(err, "paint failed")
	}
}

func (c *Collector) renderBlock() string {
	visible := window.Apply(c.window, c.rows)
	rows := make([]render.Row, len(visible))
	for i, r := range visible {
		rows[i] = render.Row{Cells: r.cells, Info: r.info}
	}
	return render.Block(render.Table{
		Title:     c.title,
		ShowTitle: c.printTitle && c.title != "",
		Columns:   c.headers.columns(),
		Rows:      rows,
	})
}
