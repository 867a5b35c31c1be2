package internal

import (
	"context"
	"log/slog"
)

// Option configures the provider.
type Option func(*Provider)

// WithLogger sets the provider logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithContext sets the base context passed to the client's Ready call.
// Useful for testing or when integrating with existing context hierarchies.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) Option {
	return func(p *Provider) {
		if ctx != nil {
			p.baseCtx = ctx
		}
	}
}
