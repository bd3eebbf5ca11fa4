package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/ports"
)

func backends(t *testing.T) map[string]ports.KeyValueStore {
	t.Helper()
	dir := t.TempDir()
	sqliteStore, err := OpenSQLiteStore(filepath.Join(dir, "db", "pyrun.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })
	return map[string]ports.KeyValueStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(dir, "file", "storage.json")),
		"sqlite": sqliteStore,
	}
}

func TestKeyValueContract(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "k", "first"))
			require.NoError(t, store.Set(ctx, "k", "second"))
			v, ok, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "second", v)

			require.NoError(t, store.Set(ctx, "other", "[]"))
			require.NoError(t, store.Delete(ctx, "k"))
			_, ok, err = store.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)

			v, ok, err = store.Get(ctx, "other")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", v)

			require.NoError(t, store.Delete(ctx, "never-set"))
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Set(ctx, domain.HistoryKey, `[{"code":"print(1)","timestamp":1}]`))

	v, ok, err := NewFileStore(path).Get(ctx, domain.HistoryKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, v, "print(1)")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.SecureFilePermissions), info.Mode().Perm())
}

func TestFileStoreCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStore(path).Get(context.Background(), domain.HistoryKey)
	assert.Error(t, err)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyrun.db")
	ctx := context.Background()

	first, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", "v"))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	v, ok, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, path, second.Path())
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	store, closer, err := Open(domain.StorageSettings{Backend: domain.StorageMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, closer.Close())

	store, closer, err = Open(domain.StorageSettings{Backend: domain.StorageFile, Path: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
	assert.NoError(t, closer.Close())

	store, closer, err = Open(domain.StorageSettings{Backend: domain.StorageSQLite, Path: filepath.Join(dir, "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	assert.NoError(t, closer.Close())

	_, _, err = Open(domain.StorageSettings{Backend: "redis"})
	assert.ErrorContains(t, err, "unknown storage backend")
}
