// Package internal provides the core provider implementation for traduki.
//
// This package is internal and should not be used directly. Import
// "github.com/traduki/traduki-go" instead, which re-exports the public API.
//
// # Core Types
//
//   - Provider: Owns a translation client instance, tracks its readiness
//     asynchronously, and mirrors its locale state.
//   - State: Immutable snapshot of the provider's published state (locale,
//     available locales, readiness, readiness error).
//   - Option: Functional option for configuring a Provider at construction.
//
// # Lifecycle
//
// NewProvider builds the client via the supplied factory and launches a
// background goroutine that awaits the client's readiness. State transitions
// are published atomically under the provider's lock; a generation counter
// guarantees that a readiness result from a superseded client instance can
// never overwrite the state of its replacement.
//
// Context plumbing follows the standard pattern: NewContext attaches a
// Provider to a context.Context, FromContext retrieves it or returns
// ErrNoProvider, and MustFromContext panics instead of returning an error.
package internal
