package settings

import "context"

// runContextKey is unexported so only this package can store run parameters.
type runContextKey struct{}

// IntoContext stores the run parameters for one CLI invocation in ctx.
func IntoContext(ctx context.Context, r *Run) context.Context {
	return context.WithValue(ctx, runContextKey{}, r)
}

// FromContext retrieves the run parameters; ok is false when none are stored.
func FromContext(ctx context.Context) (*Run, bool) {
	r, ok := ctx.Value(runContextKey{}).(*Run)
	return r, ok
}
