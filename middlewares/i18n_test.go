package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traduki/traduki-go/internal"
	"github.com/traduki/traduki-go/middlewares"
	"github.com/traduki/traduki-go/pkg/client"
	"github.com/traduki/traduki-go/pkg/clienttest"
)

func newTestProvider(t *testing.T, opts ...clienttest.Option) *internal.Provider {
	t.Helper()
	fake := clienttest.New(opts...)
	p := internal.NewProvider(fake.Factory(), client.Config{ProjectID: "p", PublicKey: "k"})
	t.Cleanup(p.Close)
	require.NoError(t, p.WaitReady(context.Background()))
	return p
}

func TestLocaleMiddleware(t *testing.T) {
	t.Parallel()

	newRequest := func(target string, mutate ...func(*http.Request)) *http.Request {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		for _, m := range mutate {
			m(r)
		}
		return r
	}

	serve := func(p *internal.Provider, r *http.Request, opts ...middlewares.LocaleOption) (locale string, providerPresent bool) {
		handler := middlewares.Locale(p, opts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale = middlewares.RequestLocale(r.Context())
			_, err := internal.FromContext(r.Context())
			providerPresent = err == nil
		}))
		handler.ServeHTTP(httptest.NewRecorder(), r)
		return locale, providerPresent
	}

	t.Run("threads provider through request context", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"))
		_, present := serve(p, newRequest("/"))
		require.True(t, present)
	})

	t.Run("query parameter wins", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"), clienttest.WithLocales("en", "de"))
		locale, _ := serve(p, newRequest("/?lang=de", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "pl"})
			r.Header.Set("Accept-Language", "en")
		}))
		require.Equal(t, "de", locale)
	})

	t.Run("cookie beats accept-language", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"), clienttest.WithLocales("en", "pl"))
		locale, _ := serve(p, newRequest("/", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "pl"})
			r.Header.Set("Accept-Language", "en")
		}))
		require.Equal(t, "pl", locale)
	})

	t.Run("accept-language matched against provider locales", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"), clienttest.WithLocales("en", "de"))
		locale, _ := serve(p, newRequest("/", func(r *http.Request) {
			r.Header.Set("Accept-Language", "de-AT,de;q=0.9")
		}))
		require.Equal(t, "de", locale)
	})

	t.Run("falls back to provider locale", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"))
		locale, _ := serve(p, newRequest("/"))
		require.Equal(t, "en", locale)
	})

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"))
		ext := middlewares.NewExtractor(middlewares.FromHeader("X-Locale"))
		locale, _ := serve(p, newRequest("/", func(r *http.Request) {
			r.Header.Set("X-Locale", "fr")
		}), middlewares.WithLocaleExtractor(ext))
		require.Equal(t, "fr", locale)
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	t.Run("translates through context provider", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t,
			clienttest.WithLocale("en"),
			clienttest.WithTranslations("en", map[string]string{"title": "Dashboard"}),
		)
		ctx := internal.NewContext(context.Background(), p)
		require.Equal(t, "Dashboard", middlewares.T(ctx, "title"))
	})

	t.Run("degrades without provider", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "title", middlewares.T(context.Background(), "title"))
		require.Equal(t, "Home", middlewares.T(context.Background(), "title", "Home"))
	})
}

func TestSetLocale(t *testing.T) {
	t.Parallel()

	t.Run("switches the provider locale", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, clienttest.WithLocale("en"))
		ctx := internal.NewContext(context.Background(), p)

		middlewares.SetLocale(ctx, "de")
		require.Equal(t, "de", p.Locale())
	})

	t.Run("no-op without provider", func(t *testing.T) {
		t.Parallel()
		require.NotPanics(t, func() {
			middlewares.SetLocale(context.Background(), "de")
		})
	})
}

func TestRequestLocale(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", middlewares.RequestLocale(context.Background()))
}
