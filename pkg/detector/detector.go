// Package detector provides locale detection strategies for the provider.
//
// A Detector decides which locale to activate when the configuration does
// not pin one explicitly. Detectors are plain functions so applications can
// supply their own; this package covers the common sources: a fixed value,
// process environment variables, and HTTP Accept-Language negotiation.
package detector

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Detector resolves the locale to activate. An empty result means the
// detector could not decide and the next fallback applies.
type Detector func() string

// Fixed returns a detector that always reports the given locale.
func Fixed(locale string) Detector {
	return func() string {
		return locale
	}
}

// FromEnv returns a detector that reads the locale from the first non-empty
// environment variable. With no names given it checks LC_ALL, LC_MESSAGES,
// and LANG in that order. Values like "en_US.UTF-8" are normalized to BCP 47
// form ("en-US"); unparseable values are skipped.
func FromEnv(names ...string) Detector {
	if len(names) == 0 {
		names = []string{"LC_ALL", "LC_MESSAGES", "LANG"}
	}
	return func() string {
		for _, name := range names {
			v := os.Getenv(name)
			if v == "" || v == "C" || v == "POSIX" {
				continue
			}
			if locale := normalize(v); locale != "" {
				return locale
			}
		}
		return ""
	}
}

// Chain returns a detector that tries the given detectors in order and
// returns the first non-empty result.
func Chain(detectors ...Detector) Detector {
	return func() string {
		for _, d := range detectors {
			if locale := d(); locale != "" {
				return locale
			}
		}
		return ""
	}
}

// MatchAcceptLanguage parses an Accept-Language header and returns the best
// match from the available locales. Quality values are honored. Returns the
// first available locale when the header is empty or nothing matches, and
// an empty string when no locales are available.
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	requested, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(requested) == 0 {
		return available[0]
	}

	// Index maps matcher positions back to the original locale strings,
	// skipping entries the tag parser rejects.
	supported := make([]language.Tag, 0, len(available))
	index := make([]string, 0, len(available))
	for _, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		index = append(index, a)
	}
	if len(supported) == 0 {
		return available[0]
	}

	matcher := language.NewMatcher(supported)
	_, i, conf := matcher.Match(requested...)
	if conf == language.No {
		return available[0]
	}
	return index[i]
}

// normalize converts a POSIX locale value ("en_US.UTF-8") to BCP 47 form.
func normalize(v string) string {
	if i := strings.IndexByte(v, '.'); i > 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '@'); i > 0 {
		v = v[:i]
	}
	v = strings.ReplaceAll(v, "_", "-")
	tag, err := language.Parse(v)
	if err != nil {
		return ""
	}
	return tag.String()
}
