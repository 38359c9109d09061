package stattab

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/stattab/pkg/render"
)

// Header declares one column at construction time: a stable key used for
// lookups and references, and an optional display label. An empty Label
// defaults to the key.
type Header struct {
	Key   string
	Label string
}

// Keys builds a header list whose labels equal their keys.
func Keys(keys ...string) []Header {
	out := make([]Header, len(keys))
	for i, k := range keys {
		out[i] = Header{Key: k}
	}
	return out
}

// header is the internal per-column state. minWidth only ever grows within a
// session, so columns never visibly shrink between paints.
type header struct {
	key      string
	label    string
	minWidth int
}

// headerSet owns column identity and order. Order is insertion order and is
// frozen after construction; only labels and widths change later.
type headerSet struct {
	order []*header
	byKey map[string]*header
}

func newHeaderSet(headers []Header) (*headerSet, error) {
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}
	hs := &headerSet{byKey: make(map[string]*header, len(headers))}
	for _, h := range headers {
		if h.Key == "" {
			return nil, ErrNoHeaders
		}
		if _, exists := hs.byKey[h.Key]; exists {
			return nil, &DuplicateHeaderError{Key: h.Key}
		}
		label := h.Label
		if label == "" {
			label = h.Key
		}
		col := &header{key: h.Key, label: label, minWidth: lipgloss.Width(label)}
		hs.order = append(hs.order, col)
		hs.byKey[h.Key] = col
	}
	return hs, nil
}

// rename replaces display labels. Unknown keys fail loudly; nothing is
// applied unless every key resolves.
func (hs *headerSet) rename(labels map[string]string) error {
	for key := range labels {
		if _, ok := hs.byKey[key]; !ok {
			return &UnknownHeaderError{Key: key}
		}
	}
	for key, label := range labels {
		col := hs.byKey[key]
		col.label = label
		if w := lipgloss.Width(label); w > col.minWidth {
			col.minWidth = w
		}
	}
	return nil
}

// grow widens a column to at least width.
func (hs *headerSet) grow(key string, width int) {
	if col, ok := hs.byKey[key]; ok && width > col.minWidth {
		col.minWidth = width
	}
}

// index returns the column position for key.
func (hs *headerSet) index(key string) (int, bool) {
	for i, col := range hs.order {
		if col.key == key {
			return i, true
		}
	}
	return 0, false
}

func (hs *headerSet) has(key string) bool {
	_, ok := hs.byKey[key]
	return ok
}

func (hs *headerSet) len() int { return len(hs.order) }

// columns produces the renderer view of the current headers.
func (hs *headerSet) columns() []render.Column {
	out := make([]render.Column, len(hs.order))
	for i, col := range hs.order {
		out[i] = render.Column{Label: col.label, Width: col.minWidth}
	}
	return out
}
