package lingo

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Provider is the interface for translation backends.
//
// Translate returns the key unchanged or an empty string to signal "no
// translation available"; both are treated as a no-update by the cache.
type Provider interface {
	Translate(ctx context.Context, key, locale string) (string, error)
}

// TranslationListener is an optional Provider capability: a fire-and-forget
// notification after every cache-populating translation.
type TranslationListener interface {
	OnTranslated(key, text string)
}

// CachePersister is an optional Provider capability for snapshot
// persistence. LoadCache returns ("", nil) when no snapshot was saved.
type CachePersister interface {
	LoadCache(ctx context.Context) (string, error)
	SaveCache(ctx context.Context, snapshot string) error
}

// Coordinator orchestrates the translation cache: non-blocking lookups with
// background fill, direct one-shot translation, bulk retranslation, and
// snapshot persistence through the provider's hooks.
type Coordinator struct {
	provider Provider
	store    *Store
	queue    *SequentialQueue
	pending  *PendingSet
	log      zerolog.Logger

	fallbackLocale string
	caching        bool

	mu     sync.RWMutex
	locale string

	obsMu     sync.Mutex
	observers map[int]func()
	nextObs   int

	cancel    context.CancelFunc
	closeOnce sync.Once
}

// CoordinatorOption is a functional option for configuring the Coordinator.
type CoordinatorOption func(*Coordinator)

// WithFallbackLocale sets the fallback locale. It defaults to the default
// locale and is fixed for the coordinator's lifetime.
func WithFallbackLocale(locale string) CoordinatorOption {
	return func(c *Coordinator) {
		c.fallbackLocale = locale
	}
}

// WithCaching controls whether the provider's persistence hooks are
// exercised: load a prior snapshot at construction, save after bulk
// retranslation. Off by default.
func WithCaching(enabled bool) CoordinatorOption {
	return func(c *Coordinator) {
		c.caching = enabled
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.log = log
	}
}

// NewCoordinator creates a coordinator for defaultLocale backed by p. A nil
// provider is allowed; lookups then always fall back to echoing the key.
//
// When caching is enabled and p implements CachePersister, a previously
// saved snapshot is loaded and merged asynchronously as the queue's first
// job: lookups made before the load completes simply miss and trigger normal
// fills, and Flush does not return before the load has finished.
func NewCoordinator(defaultLocale string, p Provider, opts ...CoordinatorOption) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Coordinator{
		provider:       p,
		store:          NewStore(),
		pending:        NewPendingSet(),
		log:            zerolog.Nop(),
		fallbackLocale: defaultLocale,
		locale:         defaultLocale,
		observers:      make(map[int]func()),
		cancel:         cancel,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.queue = NewSequentialQueue(ctx)

	if c.caching && p != nil {
		if cp, ok := p.(CachePersister); ok {
			// First job in the chain, so every fill and every Flush barrier
			// is ordered after the restore.
			c.queue.Enqueue(func(ctx context.Context) (string, error) {
				c.loadSnapshot(ctx, cp)
				return "", nil
			})
		}
	}

	return c
}

// Locale returns the current locale.
func (c *Coordinator) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// SetLocale switches the current locale, effective for subsequent Tr calls.
// It does not mutate the cache and does not warm the new locale.
func (c *Coordinator) SetLocale(locale string) {
	c.mu.Lock()
	c.locale = locale
	c.mu.Unlock()
}

// Store exposes the underlying cache for read-mostly inspection.
func (c *Coordinator) Store() *Store {
	return c.store
}

// Tr returns the cached translation for key, or key itself as an instant
// placeholder while a background fill is scheduled. Never blocks and never
// fails: an untranslated key stands as its own fallback until an observer
// notification reports new data.
//
// The optional locale argument overrides the current locale for this lookup.
func (c *Coordinator) Tr(key string, locale ...string) string {
	loc := c.Locale()
	if len(locale) > 0 && locale[0] != "" {
		loc = locale[0]
	}

	if text, ok := c.store.Get(loc, key); ok {
		return text
	}
	c.scheduleFill(key, loc)
	return key
}

// Warm schedules fills for every missing key in the given locale without
// returning placeholders. Useful for pre-filling the cache from a scanned
// document (see KeysFromHTML).
func (c *Coordinator) Warm(keys []string, locale ...string) {
	loc := c.Locale()
	if len(locale) > 0 && locale[0] != "" {
		loc = locale[0]
	}

	for _, key := range keys {
		if _, ok := c.store.Get(loc, key); !ok {
			c.scheduleFill(key, loc)
		}
	}
}

// scheduleFill queues a background fill for (key, locale) unless one is
// already in flight.
func (c *Coordinator) scheduleFill(key, locale string) {
	if key == "" || c.provider == nil {
		return
	}

	// Seed the locale bucket so repeated misses during the same in-flight
	// fill skip this step.
	if locale != c.fallbackLocale {
		c.store.SeedLocale(locale)
	}

	token := LocaleKey{LocaleID: locale, Key: key}.Token()
	if !c.pending.TryReserve(token) {
		return
	}

	c.queue.Enqueue(func(ctx context.Context) (string, error) {
		defer c.pending.Release(token)

		// Another job may have filled the entry while this one waited.
		if text, ok := c.store.Get(locale, key); ok {
			return text, nil
		}

		text, err := c.provider.Translate(ctx, key, locale)
		if err != nil {
			c.log.Warn().Err(err).
				Str("key", key).
				Str("locale", locale).
				Msg("translation fill failed")
			return "", err
		}
		if text == "" || text == key {
			// Provider could not translate; the key stands as fallback.
			return key, nil
		}

		c.store.Put(locale, key, text)
		c.notify()
		if l, ok := c.provider.(TranslationListener); ok {
			l.OnTranslated(key, text)
		}
		return text, nil
	})
}

// Flush blocks until every fill scheduled before the call has completed, by
// riding a barrier job through the queue. Returns ErrQueueClosed after Close.
func (c *Coordinator) Flush(ctx context.Context) error {
	j := c.queue.Enqueue(func(context.Context) (string, error) {
		return "", nil
	})
	_, err := j.Await(ctx)
	return err
}

// Translate performs a blocking one-shot translation, bypassing the cache
// and the fill queue. It returns ("", nil) when text is empty, no provider
// is configured, or the provider returns empty or unchanged text. It does
// not populate the cache and does not notify observers.
func (c *Coordinator) Translate(ctx context.Context, text, locale string) (string, error) {
	if text == "" || c.provider == nil {
		return "", nil
	}

	out, err := c.provider.Translate(ctx, text, locale)
	if err != nil {
		return "", fmt.Errorf("lingo: translating %q: %w", text, err)
	}
	if out == "" || out == text {
		return "", nil
	}
	return out, nil
}

// TranslateAll retranslates the union of every key ever cached in any
// locale into the target locale, sequentially. Keys already present for the
// target locale count as done without a provider call.
//
// onProgress, if non-nil, is invoked after every key with completed/total,
// reaching exactly 1.0 on the last key. An empty work list is a no-op and
// onProgress is never called. After the loop the snapshot is saved through
// the provider's persistence hook when caching is enabled, the current
// locale optionally switches to the target, and observers are notified once.
func (c *Coordinator) TranslateAll(ctx context.Context, locale string, changeLocale bool, onProgress func(float64)) error {
	if c.provider == nil {
		return nil
	}

	keys := c.store.Keys()
	if len(keys) == 0 {
		return nil
	}

	total := float64(len(keys))
	for i, key := range keys {
		if _, ok := c.store.Get(locale, key); !ok {
			out, err := c.provider.Translate(ctx, key, locale)
			if err != nil {
				return fmt.Errorf("lingo: retranslating %q: %w", key, err)
			}
			if out != "" && out != key {
				c.store.Put(locale, key, out)
			}
		}
		if onProgress != nil {
			onProgress(float64(i+1) / total)
		}
	}

	if c.caching {
		c.saveSnapshot(ctx)
	}
	if changeLocale {
		c.SetLocale(locale)
	}
	c.notify()
	return nil
}

// Subscribe registers fn to run on every cache mutation (snapshot restore,
// fill completion, bulk completion). The signal carries no payload;
// observers re-read whatever state they need. The returned cancel func
// removes the subscription.
func (c *Coordinator) Subscribe(fn func()) (cancel func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	id := c.nextObs
	c.nextObs++
	if c.observers == nil {
		c.observers = make(map[int]func())
	}
	c.observers[id] = fn

	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		delete(c.observers, id)
	}
}

func (c *Coordinator) notify() {
	c.obsMu.Lock()
	fns := make([]func(), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close saves the snapshot through the provider's save hook (regardless of
// the caching flag), stops the fill queue, and drops all observers.
// Idempotent; no further operations are valid afterwards.
func (c *Coordinator) Close() error {
	c.closeOnce.Do(func() {
		c.saveSnapshot(context.Background())
		c.queue.Close()
		c.cancel()

		c.obsMu.Lock()
		c.observers = nil
		c.obsMu.Unlock()
	})
	return nil
}

func (c *Coordinator) loadSnapshot(ctx context.Context, cp CachePersister) {
	blob, err := cp.LoadCache(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("snapshot load failed")
		return
	}
	if blob == "" {
		return
	}

	res := c.store.Restore(blob)
	if res.Skipped > 0 {
		c.log.Warn().
			Int("merged", res.Merged).
			Int("skipped", res.Skipped).
			Msg("snapshot restored with malformed entries")
	}
	if res.Merged > 0 {
		c.notify()
	}
}

func (c *Coordinator) saveSnapshot(ctx context.Context) {
	if c.provider == nil {
		return
	}
	cp, ok := c.provider.(CachePersister)
	if !ok {
		return
	}

	blob, err := c.store.Snapshot().Marshal()
	if err != nil {
		c.log.Warn().Err(err).Msg("snapshot marshal failed")
		return
	}
	if err := cp.SaveCache(ctx, blob); err != nil {
		c.log.Warn().Err(err).Msg("snapshot save failed")
	}
}
