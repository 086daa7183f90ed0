package lingo

import (
	"encoding/json"
	"sort"
	"sync"
)

// Store is a thread-safe in-memory translation cache, keyed by locale and
// then by translation key.
//
// Absence of a locale means the locale was never looked up; absence of a key
// within an existing locale means the key was looked up but not yet resolved.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]map[string]string),
	}
}

// Get retrieves a cached translation. Pure read, no side effects.
func (s *Store) Get(locale, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	texts, ok := s.data[locale]
	if !ok {
		return "", false
	}
	text, ok := texts[key]
	return text, ok
}

// Put upserts a translation, creating the locale's inner map on first write.
// Last write wins.
func (s *Store) Put(locale, key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, ok := s.data[locale]
	if !ok {
		texts = make(map[string]string)
		s.data[locale] = texts
	}
	texts[key] = text
}

// SeedLocale creates an empty entry for locale if one does not exist yet.
// A seeded locale reads as "known but unresolved" rather than "never seen".
func (s *Store) SeedLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[locale]; !ok {
		s.data[locale] = make(map[string]string)
	}
}

// Snapshot returns a deep copy of the store suitable for persistence.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(Snapshot, len(s.data))
	for locale, texts := range s.data {
		entry := make(map[string]string, len(texts))
		for key, text := range texts {
			entry[key] = text
		}
		snap[locale] = entry
	}
	return snap
}

// Marshal serializes the snapshot to its persisted JSON form.
func (s Snapshot) Marshal() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Restore merges a previously persisted snapshot into the store.
//
// Malformed input is tolerated entry-by-entry: a locale whose value is not
// an object is dropped, a key whose value is not a string is dropped, and in
// both cases the rest of the snapshot is still restored. A blob that is not
// an object at the top level restores nothing. Restore never fails; the
// returned counts report how much was recovered.
func (s *Store) Restore(blob string) RestoreResult {
	var res RestoreResult

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &top); err != nil {
		return res
	}

	for locale, raw := range top {
		var texts map[string]json.RawMessage
		if err := json.Unmarshal(raw, &texts); err != nil {
			res.Skipped++
			continue
		}

		for key, rawText := range texts {
			var text string
			if err := json.Unmarshal(rawText, &text); err != nil {
				res.Skipped++
				continue
			}
			s.Put(locale, key, text)
			res.Merged++
		}
	}

	return res
}

// Keys returns the union of translation keys across every cached locale,
// sorted for deterministic iteration.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, texts := range s.data {
		for key := range texts {
			seen[key] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Locales returns the locales present in the store, including seeded ones.
func (s *Store) Locales() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locales := make([]string, 0, len(s.data))
	for locale := range s.data {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Len returns the total number of cached translations across all locales.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, texts := range s.data {
		n += len(texts)
	}
	return n
}
