// Package provider defines translation provider implementations.
package provider

import "github.com/ZaguanLabs/lingo"

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = lingo.Provider

// TranslationListener is an alias to the main package interface.
type TranslationListener = lingo.TranslationListener

// CachePersister is an alias to the main package interface.
type CachePersister = lingo.CachePersister
