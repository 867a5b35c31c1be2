package internal

import "context"

// providerKey is the context key used to store the provider handle.
type providerKey struct{}

// NewContext returns a context carrying the provider handle. Descendant
// code retrieves it with FromContext; there is no ambient global state.
func NewContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider threaded through the context. Returns
// ErrNoProvider when the context does not descend from NewContext.
func FromContext(ctx context.Context) (*Provider, error) {
	if p, ok := ctx.Value(providerKey{}).(*Provider); ok && p != nil {
		return p, nil
	}
	return nil, ErrNoProvider
}

// MustFromContext is like FromContext but panics when no provider is
// present. Use it where a missing provider is a programming error.
func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
