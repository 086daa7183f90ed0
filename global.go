package lingo

import "sync"

// Process-wide coordinator for callers that want a convenience accessor
// instead of passing a *Coordinator around. Explicit construction via
// NewCoordinator remains the preferred path.
var (
	defaultMu sync.RWMutex
	defaultC  *Coordinator
)

// Init constructs the process-wide coordinator. It panics if called twice
// without an intervening Shutdown.
func Init(defaultLocale string, p Provider, opts ...CoordinatorOption) *Coordinator {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultC != nil {
		panic("lingo: Init called twice without Shutdown")
	}
	defaultC = NewCoordinator(defaultLocale, p, opts...)
	return defaultC
}

// Default returns the process-wide coordinator. Accessing it before Init is
// a programming error and panics rather than returning a silent default.
func Default() *Coordinator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultC == nil {
		panic("lingo: Default called before Init")
	}
	return defaultC
}

// Shutdown closes the process-wide coordinator and clears it, allowing a
// later re-Init. Safe to call when Init was never called.
func Shutdown() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultC == nil {
		return nil
	}
	err := defaultC.Close()
	defaultC = nil
	return err
}

// Tr looks up key through the process-wide coordinator.
func Tr(key string, locale ...string) string {
	return Default().Tr(key, locale...)
}
