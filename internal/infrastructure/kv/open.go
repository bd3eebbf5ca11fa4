package kv

import (
	"fmt"
	"io"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/pkg/filesystem"
	"github.com/doeshing/pyrun/internal/ports"
)

// Open builds the backend selected in settings. The returned closer must be
// called when the store is no longer needed.
func Open(settings domain.StorageSettings) (ports.KeyValueStore, io.Closer, error) {
	path := filesystem.ExpandPath(settings.Path)
	switch settings.Backend {
	case "", domain.StorageSQLite:
		if path == "" {
			path = filesystem.AppPath("pyrun.db")
		}
		store, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage %s: %w", path, err)
		}
		return store, store, nil
	case domain.StorageFile:
		if path == "" {
			path = filesystem.AppPath("storage.json")
		}
		return NewFileStore(path), nopCloser{}, nil
	case domain.StorageMemory:
		return NewMemoryStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", settings.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
