package timezone

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying tz.
func NewContext(ctx context.Context, tz *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tz)
}

// FromContext returns the Context carried by ctx, if any.
func FromContext(ctx context.Context) (*Context, bool) {
	tz, ok := ctx.Value(contextKey{}).(*Context)

	return tz, ok && tz != nil
}
