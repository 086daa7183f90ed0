// Package lingo provides a translation cache with asynchronous, ordered,
// deduplicated fill.
//
// Lingo answers "give me the best string for (locale, key) now" and fixes
// the answer up later: a cache miss returns the key itself immediately while
// a background fill job asks a pluggable provider for the real translation,
// updates the cache, and notifies observers.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/lingo"
//	    "github.com/ZaguanLabs/lingo/persist"
//	    "github.com/ZaguanLabs/lingo/provider"
//	)
//
//	func main() {
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    c := lingo.NewCoordinator("es_ES", provider.Persisted(p, persist.NewFileStore("lingo.json")),
//	        lingo.WithFallbackLocale("en_US"),
//	        lingo.WithCaching(true),
//	    )
//	    defer c.Close()
//
//	    cancel := c.Subscribe(func() {
//	        // re-render: translations arrived
//	    })
//	    defer cancel()
//
//	    fmt.Println(c.Tr("checkout.title")) // "checkout.title" now, cached text later
//	}
package lingo
