package provider

import (
	"context"
	"sync"

	"github.com/ZaguanLabs/lingo"
)

// MockProvider is a mock translation provider for testing. It implements
// every optional capability: OnTranslated notifications are recorded and
// Load/SaveCache round-trip an in-memory blob.
type MockProvider struct {
	mu           sync.Mutex
	Translations map[string]map[string]string // locale -> key -> translation
	Err          error                        // If set, Translate returns this error
	Blob         string                       // Snapshot blob served by LoadCache, overwritten by SaveCache

	CallCount int               // Number of times Translate was called
	Calls     []lingo.LocaleKey // (locale, key) pairs in call order
	Notified  map[string]string // OnTranslated recordings
	SaveCount int               // Number of times SaveCache was called
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]map[string]string{
			"es_ES": {
				"hello":   "Hola",
				"world":   "Mundo",
				"goodbye": "Adiós",
			},
			"fr_FR": {
				"hello": "Bonjour",
				"world": "Monde",
			},
		},
		Notified: make(map[string]string),
	}
}

// Translate returns mock translations. Unknown keys are returned unchanged,
// which the coordinator treats as "no translation available".
func (m *MockProvider) Translate(ctx context.Context, key, locale string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Calls = append(m.Calls, lingo.LocaleKey{LocaleID: locale, Key: key})

	if m.Err != nil {
		return "", m.Err
	}
	if texts, ok := m.Translations[locale]; ok {
		if text, ok := texts[key]; ok {
			return text, nil
		}
	}
	return key, nil
}

// OnTranslated records the notification.
func (m *MockProvider) OnTranslated(key, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notified[key] = text
}

// LoadCache returns the configured blob.
func (m *MockProvider) LoadCache(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Blob, nil
}

// SaveCache stores the blob in memory.
func (m *MockProvider) SaveCache(ctx context.Context, snapshot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Blob = snapshot
	m.SaveCount++
	return nil
}

// Reset clears all recorded state.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.Calls = nil
	m.Notified = make(map[string]string)
	m.SaveCount = 0
	m.Blob = ""
}

// Verify MockProvider implements all provider capabilities
var (
	_ Provider            = (*MockProvider)(nil)
	_ TranslationListener = (*MockProvider)(nil)
	_ CachePersister      = (*MockProvider)(nil)
)
