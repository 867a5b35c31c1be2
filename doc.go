// Package traduki binds a hosted translation service to Go applications
// through a provider/accessor pattern.
//
// The translation engine itself (locale negotiation, interpolation,
// background key creation, caching, network I/O) lives in a separate
// client implementation consumed through the small client.Client
// interface. This package owns the plumbing around it: constructing a
// client instance from configuration, awaiting its readiness without
// blocking, mirroring its locale state, and re-exposing lookups to
// descendant code.
//
// # Quick Start
//
// Create a provider with traduki.New(), giving it a client factory and the
// project configuration:
//
//	p := traduki.New(apiclient.New, traduki.Config{
//	    ProjectID: "my-project",
//	    PublicKey: os.Getenv("TRADUKI_PUBLIC_KEY"),
//	}, traduki.WithLogger(slog.Default()))
//	defer p.Close()
//
// The provider is usable immediately. Until the client has fetched its
// initial translation data, lookups degrade gracefully:
//
//	p.T("home.title")             // "home.title" while loading
//	p.T("home.title", "Welcome")  // "Welcome" while loading
//
// Once ready, lookups delegate to the client, with optional interpolation
// params as the final argument:
//
//	p.T("greeting", traduki.M{"name": "Ada"})
//	p.T("greeting", "Hello, {{name}}!", traduki.M{"name": "Ada"})
//
// # Context Passing
//
// Rather than ambient global state, the provider handle is threaded
// explicitly through context:
//
//	ctx = traduki.NewContext(ctx, p)
//	...
//	p, err := traduki.FromContext(ctx) // ErrNoProvider outside a scope
//
// For HTTP services, the middlewares package resolves a per-request locale
// and does the context threading for you.
//
// # Reconfiguration
//
// Configuration is identity-compared: Reconfigure with an identical config
// is a no-op, while a changed config replaces the client instance and
// resets readiness. A superseded instance's late readiness resolution is
// discarded, so a slow old instance can never clobber the state of the
// current one.
//
// # Readiness Failures
//
// If the client's initial fetch fails, the provider stays not-ready and
// records the failure: Err returns it and WaitReady surfaces it. Lookups
// keep degrading gracefully.
package traduki
