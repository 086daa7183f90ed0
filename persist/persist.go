// Package persist provides snapshot persistence backends.
package persist

import "context"

// Store persists an opaque serialized snapshot blob.
type Store interface {
	// Load returns the previously saved blob, or ("", nil) if nothing was
	// saved yet.
	Load(ctx context.Context) (string, error)

	// Save persists the blob, replacing any prior one.
	Save(ctx context.Context, blob string) error
}
