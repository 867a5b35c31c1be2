// Package middlewares provides HTTP middleware for exposing a translation
// provider to request handlers.
//
// The Locale middleware resolves the request's locale from the query
// string, a cookie, or the Accept-Language header, and threads the provider
// handle through the request context:
//
//	p := traduki.New(factory, cfg)
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(p))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    w.Write([]byte(middlewares.T(r.Context(), "home.title", "Welcome")))
//	})
//
// Lookups degrade gracefully: before the provider is ready, T returns the
// supplied fallback or the key itself.
package middlewares
