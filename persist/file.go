package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileStore persists the snapshot blob as a single file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a file store writing to path.
// The path is provided by the caller and is intentionally user-controlled.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file is not an error.
func (f *FileStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path) // #nosec G304 - path is intentionally user-provided
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading snapshot file: %w", err)
	}
	return string(data), nil
}

// Save writes the snapshot file, replacing any prior one.
func (f *FileStore) Save(ctx context.Context, blob string) error {
	if err := os.WriteFile(f.path, []byte(blob), 0o600); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}

// Path returns the file path this store writes to.
func (f *FileStore) Path() string {
	return f.path
}

// Verify FileStore implements Store
var _ Store = (*FileStore)(nil)
