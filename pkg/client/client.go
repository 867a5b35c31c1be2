package client

import "context"

// M carries interpolation values for a translation lookup.
type M = map[string]any

// Client is the translation service collaborator. Implementations own all
// translation logic; the provider only sequences readiness and republishes
// state. Locale, Locales, and DefaultLocale report meaningful values once
// Ready has returned nil; before that the zero values are acceptable.
type Client interface {
	// Ready blocks until the initial translation data has been fetched.
	// It is called at most once per instance.
	Ready(ctx context.Context) error

	// Locale returns the currently active locale.
	Locale() string

	// SetLocale switches the active locale. Implementations may confirm
	// the switch asynchronously; callers treat it as fire-and-forget.
	SetLocale(locale string)

	// Locales returns the locales available in the project.
	Locales() []string

	// DefaultLocale returns the project's default locale, or "" when the
	// project does not define one.
	DefaultLocale() string

	// Translate resolves key to a localized string. An empty fallback
	// means none was supplied; implementations return the key itself when
	// neither a translation nor a fallback exists.
	Translate(key, fallback string, params M) string
}

// Factory constructs a Client from configuration. The provider calls it
// once per configuration identity and replaces the instance, never mutates
// it, when the configuration changes.
type Factory func(Config) Client
