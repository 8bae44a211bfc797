package httpvalidate

import (
	"context"

	"github.com/dmitrymomot/proptypes"
)

type contextKey struct{}

// WithProps stores validated props in ctx.
func WithProps(ctx context.Context, props proptypes.Props) context.Context {
	return context.WithValue(ctx, contextKey{}, props)
}

// PropsFromContext returns the props stored by the validation middleware.
func PropsFromContext(ctx context.Context) (proptypes.Props, bool) {
	if ctx == nil {
		return nil, false
	}
	props, ok := ctx.Value(contextKey{}).(proptypes.Props)
	return props, ok
}
