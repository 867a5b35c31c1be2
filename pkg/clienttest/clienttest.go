// Package clienttest provides a scripted in-memory client for testing code
// that consumes the provider. It is test tooling, not a translation engine:
// lookups are plain map reads with the same placeholder convention the
// service uses ({{name}}).
package clienttest

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/traduki/traduki-go/pkg/client"
)

// Fake implements client.Client with controllable readiness.
type Fake struct {
	mu             sync.Mutex
	cfg            client.Config
	locale         string
	defaultLocale  string
	locales        []string
	translations   map[string]map[string]string
	readyErr       error
	gate           chan struct{}
	readyCalls     int
	setLocaleCalls []string
}

// Option configures a Fake during construction.
type Option func(*Fake)

// WithLocale sets the locale the fake reports before any negotiation.
func WithLocale(locale string) Option {
	return func(f *Fake) {
		f.locale = locale
	}
}

// WithDefaultLocale sets the project default locale.
func WithDefaultLocale(locale string) Option {
	return func(f *Fake) {
		f.defaultLocale = locale
	}
}

// WithLocales sets the available locales.
func WithLocales(locales ...string) Option {
	return func(f *Fake) {
		f.locales = locales
	}
}

// WithTranslations registers messages for a locale.
func WithTranslations(locale string, messages map[string]string) Option {
	return func(f *Fake) {
		f.translations[locale] = messages
	}
}

// WithReadyError makes Ready return the given error.
func WithReadyError(err error) Option {
	return func(f *Fake) {
		f.readyErr = err
	}
}

// WithBlockedReady makes Ready block until ReleaseReady is called or the
// context is canceled.
func WithBlockedReady() Option {
	return func(f *Fake) {
		f.gate = make(chan struct{})
	}
}

// New creates a Fake. Without options it is ready immediately with no
// locales and no translations.
func New(opts ...Option) *Fake {
	f := &Fake{
		translations: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Factory returns a client.Factory that hands out this fake and records the
// configuration it was constructed with. A pinned config locale, or the
// config detector when no locale is pinned, overrides the fake's locale.
func (f *Fake) Factory() client.Factory {
	return func(cfg client.Config) client.Client {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.cfg = cfg
		switch {
		case cfg.Locale != "":
			f.locale = cfg.Locale
		case cfg.Detector != nil:
			if locale := cfg.Detector(); locale != "" && slices.Contains(f.locales, locale) {
				f.locale = locale
			}
		}
		return f
	}
}

// ReleaseReady unblocks a pending Ready call.
func (f *Fake) ReleaseReady() {
	f.mu.Lock()
	gate := f.gate
	f.gate = nil
	f.mu.Unlock()
	if gate != nil {
		close(gate)
	}
}

// Config returns the configuration the factory was called with.
func (f *Fake) Config() client.Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}

// ReadyCalls reports how many times Ready was invoked.
func (f *Fake) ReadyCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readyCalls
}

// SetLocaleCalls returns the locales passed to SetLocale, in order.
func (f *Fake) SetLocaleCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.setLocaleCalls)
}

func (f *Fake) Ready(ctx context.Context) error {
	f.mu.Lock()
	f.readyCalls++
	gate := f.gate
	err := f.readyErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (f *Fake) Locale() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locale
}

func (f *Fake) SetLocale(locale string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locale = locale
	f.setLocaleCalls = append(f.setLocaleCalls, locale)
}

func (f *Fake) Locales() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.locales)
}

func (f *Fake) DefaultLocale() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.defaultLocale
}

func (f *Fake) Translate(key, fallback string, params client.M) string {
	f.mu.Lock()
	msg, ok := f.translations[f.locale][key]
	f.mu.Unlock()

	if !ok {
		if fallback != "" {
			return fallback
		}
		return key
	}

	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", fmt.Sprintf("%v", value))
	}
	return msg
}
