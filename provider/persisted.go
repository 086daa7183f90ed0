package provider

import (
	"context"

	"github.com/ZaguanLabs/lingo"
	"github.com/ZaguanLabs/lingo/persist"
)

// PersistedProvider decorates a Provider with snapshot persistence backed by
// a persist.Store, so any provider gains Load/SaveCache hooks. OnTranslated
// notifications are forwarded when the wrapped provider supports them.
type PersistedProvider struct {
	Provider
	store persist.Store
}

// Persisted wraps p with persistence through s.
func Persisted(p Provider, s persist.Store) *PersistedProvider {
	return &PersistedProvider{Provider: p, store: s}
}

// Translate delegates to the wrapped provider. A nil wrapped provider
// behaves like an absent one and yields no translation.
func (p *PersistedProvider) Translate(ctx context.Context, key, locale string) (string, error) {
	if p.Provider == nil {
		return "", nil
	}
	return p.Provider.Translate(ctx, key, locale)
}

// LoadCache loads the snapshot blob from the backing store.
func (p *PersistedProvider) LoadCache(ctx context.Context) (string, error) {
	blob, err := p.store.Load(ctx)
	if err != nil {
		return "", &lingo.CacheError{Message: "loading snapshot", Cause: err}
	}
	return blob, nil
}

// SaveCache saves the snapshot blob to the backing store.
func (p *PersistedProvider) SaveCache(ctx context.Context, snapshot string) error {
	if err := p.store.Save(ctx, snapshot); err != nil {
		return &lingo.CacheError{Message: "saving snapshot", Cause: err}
	}
	return nil
}

// OnTranslated forwards to the wrapped provider when it listens.
func (p *PersistedProvider) OnTranslated(key, text string) {
	if l, ok := p.Provider.(TranslationListener); ok {
		l.OnTranslated(key, text)
	}
}

// Verify PersistedProvider implements the persistence capability
var _ CachePersister = (*PersistedProvider)(nil)
