package stattab

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/stattab/internal/window"
	"github.com/oakwood-commons/stattab/pkg/console"
)

// Option configures a Collector.
type Option func(*Collector)

// WithTitle sets the title shown in the mini-table above the data block.
// The default is "STATISTICS"; an empty title suppresses the block.
func WithTitle(title string) Option {
	return func(c *Collector) {
		c.title = title
	}
}

// WithOutput redirects painted output. The default is os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(c *Collector) {
		c.out = out
	}
}

// WithResetMode selects the erase strategy used before repainting.
func WithResetMode(mode console.ResetMode) Option {
	return func(c *Collector) {
		c.resetMode = mode
	}
}

// WithPrintTitle controls whether the title block is rendered.
func WithPrintTitle(enabled bool) Option {
	return func(c *Collector) {
		c.printTitle = enabled
	}
}

// WithPrintStats controls automatic painting: when disabled, Add and Update
// only mutate state and the caller obtains text via GetTable (for example to
// hand it to a logger).
func WithPrintStats(enabled bool) Option {
	return func(c *Collector) {
		c.printStats = enabled
	}
}

// WithFormatFunc replaces the value stringification function. Every sample
// value passes through it exactly once, during Add/Update, so widths and
// rendering operate on text only.
func WithFormatFunc(format func(any) string) Option {
	return func(c *Collector) {
		if format != nil {
			c.format = format
		}
	}
}

// WithRowWindow bounds the rows rendered per paint. All rows are still
// collected; the window only trims what is painted, keeping the repaint
// region fixed on long runs. Config{Tail: n} shows the last n rows.
func WithRowWindow(cfg window.Config) Option {
	return func(c *Collector) {
		c.window = cfg
	}
}

// WithLogger attaches a structured logger for resolution and paint
// diagnostics. The default is a no-op logger.
func WithLogger(log *logr.Logger) Option {
	return func(c *Collector) {
		if log != nil {
			c.log = log
		}
	}
}
