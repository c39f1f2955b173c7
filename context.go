package formatter

import (
	"context"
)

type contextKey struct{ name string }

var facadeKey = &contextKey{"formatter.facade"}

// WithContext returns a copy of ctx carrying f.
func WithContext(ctx context.Context, f *Facade) context.Context {
	return context.WithValue(ctx, facadeKey, f)
}

// FromContext returns the facade stored by Middleware or WithContext, or nil.
func FromContext(ctx context.Context) *Facade {
	if ctx == nil {
		return nil
	}
	f, _ := ctx.Value(facadeKey).(*Facade)
	return f
}

// Format formats value with the formatter name of the facade in ctx.
func Format(ctx context.Context, name string, value any, opts ...Option) (any, error) {
	f := FromContext(ctx)
	if f == nil {
		return nil, ErrNoFacade
	}
	return f.Format(name, value, opts...)
}
