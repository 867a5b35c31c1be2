package traduki

import (
	"context"
	"log/slog"

	"github.com/traduki/traduki-go/internal"
	"github.com/traduki/traduki-go/pkg/client"
	"github.com/traduki/traduki-go/pkg/detector"
)

// Type aliases - public API
type (
	// Provider owns the translation client instance and republishes its
	// state to consumers.
	Provider = internal.Provider

	// State is a point-in-time snapshot of the shared translation state.
	State = internal.State

	// Option configures the provider.
	Option = internal.Option

	// Client is the translation service collaborator.
	Client = client.Client

	// Config describes one translation client instance.
	Config = client.Config

	// Factory constructs a Client from configuration.
	Factory = client.Factory

	// M carries interpolation values for a translation lookup.
	M = client.M

	// Detector resolves the locale to activate when the configuration
	// does not pin one.
	Detector = detector.Detector
)

// Sentinel errors - public API
var (
	// ErrNoProvider reports an accessor used outside a provider scope.
	ErrNoProvider = internal.ErrNoProvider

	// ErrClosed reports an operation on a closed provider.
	ErrClosed = internal.ErrClosed
)

// Constructors

// New constructs a translation client from the configuration and starts
// awaiting its readiness in the background. The returned provider is usable
// immediately; lookups degrade to the supplied fallback, or the key itself,
// until readiness resolves.
//
// Example:
//
//	p := traduki.New(apiclient.New, traduki.Config{
//	    ProjectID: "my-project",
//	    PublicKey: os.Getenv("TRADUKI_PUBLIC_KEY"),
//	    Detector:  detector.FromEnv(),
//	}, traduki.WithLogger(slog.Default()))
//	defer p.Close()
//
//	fmt.Println(p.T("home.title", "Welcome"))
func New(factory Factory, cfg Config, opts ...Option) *Provider {
	return internal.NewProvider(factory, cfg, opts...)
}

// WithLogger sets the provider logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithContext sets the base context passed to the client's Ready call.
func WithContext(ctx context.Context) Option {
	return internal.WithContext(ctx)
}

// NewContext returns a context carrying the provider handle.
func NewContext(ctx context.Context, p *Provider) context.Context {
	return internal.NewContext(ctx, p)
}

// FromContext returns the provider threaded through the context.
// Returns ErrNoProvider when the context does not descend from NewContext.
func FromContext(ctx context.Context) (*Provider, error) {
	return internal.FromContext(ctx)
}

// MustFromContext is like FromContext but panics when no provider is
// present.
func MustFromContext(ctx context.Context) *Provider {
	return internal.MustFromContext(ctx)
}
