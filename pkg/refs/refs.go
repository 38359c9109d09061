// Package refs maintains pull bindings from table header keys to external
// readable locations. A binding is a small read-only capability: the registry
// never writes through it, it only pulls the current value when a sample is
// collected without explicit data.
package refs

import (
	"fmt"

	"go.uber.org/multierr"
)

// Binding supplies the current value for one header key.
type Binding interface {
	Read() (any, error)
}

// BindingFunc adapts a plain closure to the Binding interface.
type BindingFunc func() (any, error)

// Read calls the wrapped closure.
func (f BindingFunc) Read() (any, error) { return f() }

// MapKey binds to an entry of a map. Reading a key that has been deleted
// fails, so a stale binding degrades to a per-key resolution error instead of
// a zero value.
func MapKey[K comparable, V any](m map[K]V, key K) Binding {
	return BindingFunc(func() (any, error) {
		v, ok := m[key]
		if !ok {
			return nil, fmt.Errorf("map key %v not present", key)
		}
		return v, nil
	})
}

// Index binds to a slot of a slice.
func Index[T any](s []T, i int) Binding {
	return BindingFunc(func() (any, error) {
		if i < 0 || i >= len(s) {
			return nil, fmt.Errorf("index %d out of range (len %d)", i, len(s))
		}
		return s[i], nil
	})
}

// Field binds to a record field through an explicit accessor closure. The
// closure stands in for attribute access; no reflection is involved.
func Field(read func() (any, error)) Binding {
	return BindingFunc(read)
}

// DuplicateReferenceError reports a Bind call on an already-bound key without
// the force flag.
type DuplicateReferenceError struct {
	Key string
}

func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("reference for header %q already exists", e.Key)
}

// ResolutionError reports a single binding whose location could not be read.
type ResolutionError struct {
	Key string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve reference %q: %v", e.Key, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Registry holds at most one binding per header key, in insertion order.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	order    []string
	bindings map[string]Binding
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]Binding)}
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int { return len(r.bindings) }

// Bind registers a binding for key. An existing binding is only replaced when
// force is true; otherwise Bind fails with a *DuplicateReferenceError.
func (r *Registry) Bind(key string, b Binding, force bool) error {
	if b == nil {
		return fmt.Errorf("nil binding for header %q", key)
	}
	if _, exists := r.bindings[key]; exists {
		if !force {
			return &DuplicateReferenceError{Key: key}
		}
		r.bindings[key] = b
		return nil
	}
	r.order = append(r.order, key)
	r.bindings[key] = b
	return nil
}

// Keys returns the bound header keys in insertion order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Resolve reads the single binding for key.
func (r *Registry) Resolve(key string) (any, error) {
	b, ok := r.bindings[key]
	if !ok {
		return nil, fmt.Errorf("no reference for header %q", key)
	}
	v, err := b.Read()
	if err != nil {
		return nil, &ResolutionError{Key: key, Err: err}
	}
	return v, nil
}

// ResolveMissing fills sample with the current value of every bound key the
// sample does not already contain; explicitly supplied keys are never read.
// Resolution is best effort: a failing binding contributes a *ResolutionError
// to the combined error and leaves its key absent, while every still-readable
// binding resolves normally.
func (r *Registry) ResolveMissing(sample map[string]any) error {
	var errs error
	for _, key := range r.Keys() {
		if _, ok := sample[key]; ok {
			continue
		}
		v, err := r.Resolve(key)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sample[key] = v
	}
	return errs
}
