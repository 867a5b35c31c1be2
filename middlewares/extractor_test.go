package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traduki/traduki-go/middlewares"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty match", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		r.Header.Set("X-Locale", "pl")

		ext := middlewares.NewExtractor(
			middlewares.FromHeader("X-Missing"),
			middlewares.FromQuery("lang"),
			middlewares.FromHeader("X-Locale"),
		)
		v, ok := ext.Extract(r)
		require.True(t, ok)
		require.Equal(t, "de", v)
	})

	t.Run("misses when all sources miss", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ext := middlewares.NewExtractor(
			middlewares.FromQuery("lang"),
			middlewares.FromCookie("lang"),
		)
		v, ok := ext.Extract(r)
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("reads cookie value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "pl"})

		v, ok := middlewares.FromCookie("lang")(r)
		require.True(t, ok)
		require.Equal(t, "pl", v)
	})
}
