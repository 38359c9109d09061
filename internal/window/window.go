// Package window bounds the set of rows handed to the renderer. A collector
// accumulates rows without limit; a window keeps the painted region, and with
// it the erase cost of every repaint, fixed.
package window

import "fmt"

// Config holds the row-windowing parameters.
type Config struct {
	Head int // render only the first N rows (0 = unlimited)
	Skip int // skip the first N rows (0 = no skip)
	Tail int // render only the last N rows (0 = disabled); mutually exclusive with Head
}

// Validate checks for conflicting parameter combinations.
// Rules:
// - Head and Tail are mutually exclusive
// - If Tail is set, Skip is ignored
// - All values must be non-negative
func (c Config) Validate() error {
	if c.Head < 0 {
		return fmt.Errorf("head must be non-negative, got %d", c.Head)
	}
	if c.Skip < 0 {
		return fmt.Errorf("skip must be non-negative, got %d", c.Skip)
	}
	if c.Tail < 0 {
		return fmt.Errorf("tail must be non-negative, got %d", c.Tail)
	}
	if c.Head > 0 && c.Tail > 0 {
		return fmt.Errorf("head and tail are mutually exclusive")
	}
	return nil
}

// IsActive returns true if any windowing is configured.
func (c Config) IsActive() bool {
	return c.Head > 0 || c.Skip > 0 || c.Tail > 0
}

// Apply returns the windowed subset of rows. The result aliases the input
// slice; callers must not append through it.
func Apply[T any](c Config, rows []T) []T {
	if !c.IsActive() {
		return rows
	}

	length := len(rows)

	if c.Tail > 0 {
		start := length - c.Tail
		if start < 0 {
			start = 0
		}
		return rows[start:]
	}

	start := c.Skip
	if start > length {
		start = length
	}

	end := length
	if c.Head > 0 {
		end = start + c.Head
		if end > length {
			end = length
		}
	}
	if start > end {
		start = end
	}

	return rows[start:end]
}
