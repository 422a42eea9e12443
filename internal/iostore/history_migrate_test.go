package iostore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gradebook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateHistory_NoneBackend(t *testing.T) {
	err := MigrateHistory(&bytes.Buffer{}, schema.NoneBackend, "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateHistory_RedisBackend(t *testing.T) {
	err := MigrateHistory(&bytes.Buffer{}, schema.RedisBackend, "redis://localhost:6379/0", -1)
	assert.Error(t, err)
}

func TestMigrateHistory_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_migration.db")
	var out bytes.Buffer

	// Migrate to the latest version
	require.NoError(t, MigrateHistory(&out, schema.SQLiteBackend, dbPath, -1))
	assert.Contains(t, out.String(), "Successfully migrated from version 0 to version 2")

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)

	// Running again is a no-op
	out.Reset()
	require.NoError(t, MigrateHistory(&out, schema.SQLiteBackend, dbPath, -1))
	assert.Contains(t, out.String(), "No migration needed")

	// Step down to version 1
	out.Reset()
	require.NoError(t, MigrateHistory(&out, schema.SQLiteBackend, dbPath, 1))
	assert.Contains(t, out.String(), "to version 1")

	// Roll back everything
	out.Reset()
	require.NoError(t, MigrateHistory(&out, schema.SQLiteBackend, dbPath, 0))
	assert.Contains(t, out.String(), "rolled back")

	// And back up again
	require.NoError(t, MigrateHistory(&out, schema.SQLiteBackend, dbPath, 2))
}

func TestMigrateHistory_AfterStoreCreatedTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.NoError(t, MigrateHistory(&bytes.Buffer{}, schema.SQLiteBackend, dbPath, -1))
}

func TestMigrateHistory_SQLiteInMemory(t *testing.T) {
	require.NoError(t, MigrateHistory(&bytes.Buffer{}, schema.SQLiteBackend, ":memory:", -1))
}

func TestMigrationsEmbedded(t *testing.T) {
	for _, backend := range []string{"sqlite", "mysql", "postgresql"} {
		t.Run(backend, func(t *testing.T) {
			entries, err := migrationsFS.ReadDir("migrations/" + backend)
			require.NoError(t, err)
			assert.Len(t, entries, 4, "each backend ships an up and a down file per version")
		})
	}
}
