package middlewares

import (
	"context"
	"net/http"

	"github.com/traduki/traduki-go/internal"
	"github.com/traduki/traduki-go/pkg/detector"
)

// localeKey is the context key used to store the resolved request locale.
type localeKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Extractor    Extractor
	extractorSet bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor sets a custom locale extractor chain.
func WithLocaleExtractor(ext Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// FromAcceptLanguage returns a LocaleSource that parses the Accept-Language
// header and matches it against the locales the provider currently reports.
func FromAcceptLanguage(p *internal.Provider) LocaleSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		locale := detector.MatchAcceptLanguage(header, p.Locales())
		if locale == "" {
			return "", false
		}
		return locale, true
	}
}

// Locale returns middleware that resolves the request's locale and threads
// the provider handle plus the resolved locale through the request context.
// Handlers read them with T and RequestLocale.
//
// The resolved value is request-scoped: it does not switch the provider's
// active locale. Handlers that want to switch call SetLocale explicitly.
func Locale(p *internal.Provider, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default extractor: query → cookie → accept-language
	if !cfg.extractorSet {
		cfg.Extractor = NewExtractor(
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(p),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := cfg.Extractor.Extract(r)
			if !ok || locale == "" {
				locale = p.Locale()
				if locale == "" {
					locale = p.DefaultLocale()
				}
			}

			ctx := internal.NewContext(r.Context(), p)
			ctx = context.WithValue(ctx, localeKey{}, locale)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// T translates a key using the provider threaded through the context by the
// Locale middleware. Degrades to the fallback, or the key itself, when no
// provider is present or the provider is not ready.
func T(ctx context.Context, key string, args ...any) string {
	p, _ := internal.FromContext(ctx)
	return p.T(key, args...)
}

// RequestLocale returns the locale resolved by the Locale middleware.
// Returns an empty string if the middleware is not used.
func RequestLocale(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return ""
}

// SetLocale switches the provider's active locale through the context.
// It is a no-op when no provider is present.
func SetLocale(ctx context.Context, locale string) {
	if p, err := internal.FromContext(ctx); err == nil {
		p.SetLocale(locale)
	}
}
