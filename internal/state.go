package internal

import "github.com/traduki/traduki-go/pkg/client"

// State is a point-in-time snapshot of the shared translation state. It is
// passed by value; a snapshot never changes after it is taken.
type State struct {
	// Locale is the active locale. Before readiness it mirrors the
	// configured locale, which may be empty.
	Locale string

	// DefaultLocale is the project's default locale, "" when undefined.
	DefaultLocale string

	// Locales lists the locales available in the project.
	Locales []string

	// Err is the readiness failure of the current configuration, nil
	// while pending or after success.
	Err error

	// Ready reports whether the current client instance has fetched its
	// initial translation data.
	Ready bool
}

// lookup holds the normalized arguments of a T call.
type lookup struct {
	fallback    string
	params      client.M
	hasFallback bool
}

// parseLookupArgs resolves the positional overload of T: the first extra
// argument is either a string fallback or a params map, the second, when
// present, is always a params map. Anything else is ignored.
func parseLookupArgs(args []any) lookup {
	var l lookup
	if len(args) == 0 {
		return l
	}

	switch v := args[0].(type) {
	case string:
		l.fallback = v
		l.hasFallback = true
	case client.M:
		l.params = v
	}

	if len(args) > 1 {
		if p, ok := args[1].(client.M); ok {
			l.params = p
		}
	}

	return l
}
