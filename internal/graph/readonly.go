package graph

import "context"

type readOnlyKey struct{}

// WithReadOnly marks ctx so that mutations executed with it are refused.
// The HTTP layer uses it for GET requests.
func WithReadOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, readOnlyKey{}, true)
}

func isReadOnly(ctx context.Context) bool {
	v, _ := ctx.Value(readOnlyKey{}).(bool)
	return v
}
