package internal

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/traduki/traduki-go/pkg/client"
)

// Provider owns at most one live translation client instance at a time and
// republishes its state. Construction never blocks: the client's readiness
// is awaited in the background and components read a "not ready" snapshot
// until it resolves.
//
// Every (re)configuration bumps a generation counter. The readiness
// continuation re-checks the generation before applying any state update,
// so a slow-to-resolve superseded instance can never clobber the state of
// the current one. That check is the sole concurrency-correctness
// mechanism: the pending Ready call is not canceled, only its effect is
// suppressed.
type Provider struct {
	factory client.Factory
	logger  *slog.Logger
	baseCtx context.Context

	mu        sync.Mutex
	instance  client.Client
	identity  client.Identity
	gen       uint64
	state     State
	readyCh   chan struct{}
	signalled bool
	subs      map[int]func(State)
	nextSub   int
	closed    bool
}

// NewProvider constructs a client from the configuration and starts
// awaiting its readiness. The returned provider is usable immediately;
// lookups degrade gracefully until readiness resolves.
func NewProvider(factory client.Factory, cfg client.Config, opts ...Option) *Provider {
	p := &Provider{
		factory: factory,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseCtx: context.Background(),
		subs:    make(map[int]func(State)),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	p.applyConfigLocked(cfg)
	p.mu.Unlock()

	return p
}

// applyConfigLocked replaces the client instance for a new configuration
// identity. The caller holds p.mu.
func (p *Provider) applyConfigLocked(cfg client.Config) {
	p.gen++
	p.identity = cfg.Identity()

	// Wake waiters parked on the superseded generation.
	if p.readyCh != nil && !p.signalled {
		close(p.readyCh)
	}
	p.readyCh = make(chan struct{})
	p.signalled = false

	inst := p.factory(cfg)
	p.instance = inst
	p.state = State{Locale: cfg.Locale}

	go p.watchReady(inst, p.gen)
}

// watchReady waits for the instance's readiness and publishes the result,
// unless the generation has been superseded or the provider closed in the
// meantime.
func (p *Provider) watchReady(inst client.Client, gen uint64) {
	err := inst.Ready(p.baseCtx)

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		p.logger.DebugContext(p.baseCtx, "discarded stale readiness resolution", "generation", gen)
		return
	}

	if err != nil {
		p.state.Err = err
		p.logger.ErrorContext(p.baseCtx, "translation client failed to become ready", "error", err)
	} else {
		p.state.Locale = inst.Locale()
		p.state.Locales = inst.Locales()
		p.state.DefaultLocale = inst.DefaultLocale()
		p.state.Ready = true
	}

	close(p.readyCh)
	p.signalled = true

	snap, subs := p.snapshotLocked()
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// snapshotLocked returns the current state and the subscriber list to
// notify. The caller holds p.mu.
func (p *Provider) snapshotLocked() (State, []func(State)) {
	subs := make([]func(State), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	return p.state, subs
}

// Reconfigure replaces the client instance when the configuration identity
// differs from the current one. Identical configurations are a no-op, so
// callers may pass their configuration unconditionally. The superseded
// instance's pending readiness resolution is suppressed, never applied.
func (p *Provider) Reconfigure(cfg client.Config) {
	p.mu.Lock()
	if p.closed || cfg.Identity() == p.identity {
		p.mu.Unlock()
		return
	}

	p.applyConfigLocked(cfg)
	snap, subs := p.snapshotLocked()
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Snapshot returns the current shared state.
func (p *Provider) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsReady reports whether the current client instance has fetched its
// initial translation data.
func (p *Provider) IsReady() bool {
	return p.Snapshot().Ready
}

// Locale returns the active locale.
func (p *Provider) Locale() string {
	return p.Snapshot().Locale
}

// Locales returns the locales available in the project. Empty before
// readiness.
func (p *Provider) Locales() []string {
	return p.Snapshot().Locales
}

// DefaultLocale returns the project's default locale, "" when undefined or
// not yet fetched.
func (p *Provider) DefaultLocale() string {
	return p.Snapshot().DefaultLocale
}

// Err returns the readiness failure of the current configuration, nil
// while pending or after success.
func (p *Provider) Err() error {
	return p.Snapshot().Err
}

// SetLocale switches the active locale. It is a no-op without a live
// instance. The new value is mirrored into the published state
// synchronously, without awaiting the client's own confirmation.
func (p *Provider) SetLocale(locale string) {
	p.mu.Lock()
	if p.closed || p.instance == nil {
		p.mu.Unlock()
		return
	}
	inst := p.instance
	p.state.Locale = locale
	snap, subs := p.snapshotLocked()
	p.mu.Unlock()

	inst.SetLocale(locale)

	for _, fn := range subs {
		fn(snap)
	}
}

// T resolves key to a localized string. The first extra argument is either
// a string fallback or a params map; the second, when present, is always a
// params map:
//
//	p.T("greeting")
//	p.T("greeting", "Hello!")
//	p.T("greeting", client.M{"name": "Ada"})
//	p.T("greeting", "Hello, {{name}}!", client.M{"name": "Ada"})
//
// Before readiness, or on a nil provider, T returns the fallback when one
// was supplied and the key itself otherwise.
func (p *Provider) T(key string, args ...any) string {
	l := parseLookupArgs(args)

	if p == nil {
		return l.degrade(key)
	}

	p.mu.Lock()
	inst, ready := p.instance, p.state.Ready
	p.mu.Unlock()

	if inst == nil || !ready {
		return l.degrade(key)
	}
	return inst.Translate(key, l.fallback, l.params)
}

// degrade returns the pre-readiness result for a lookup.
func (l lookup) degrade(key string) string {
	if l.hasFallback {
		return l.fallback
	}
	return key
}

// Subscribe registers fn to be called with a fresh snapshot on every state
// change. The returned function removes the subscription. fn is invoked
// outside the provider lock and must not block for long.
func (p *Provider) Subscribe(fn func(State)) func() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return func() {}
	}
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		if p.subs != nil {
			delete(p.subs, id)
		}
		p.mu.Unlock()
	}
}

// WaitReady blocks until the provider is ready, the current configuration's
// readiness fails, the provider is closed, or ctx is done. A reconfigure
// while waiting extends the wait to the new configuration.
func (p *Provider) WaitReady(ctx context.Context) error {
	for {
		p.mu.Lock()
		switch {
		case p.closed:
			p.mu.Unlock()
			return ErrClosed
		case p.state.Ready:
			p.mu.Unlock()
			return nil
		case p.state.Err != nil:
			err := p.state.Err
			p.mu.Unlock()
			return err
		}
		ch := p.readyCh
		p.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

// Close tears the provider down. An in-flight readiness resolution after
// Close is discarded, never applied. Close is idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.gen++
	if !p.signalled {
		close(p.readyCh)
		p.signalled = true
	}
	p.instance = nil
	p.subs = nil
	p.mu.Unlock()
}
