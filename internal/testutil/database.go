// Package testutil provides shared fixtures for tests that need a catalog on
// disk or in a database.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/dex/internal/decode"
	"github.com/Veraticus/dex/internal/storage"
)

// TestDB wraps an in-memory catalog database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory database. It is closed when the
// test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// SetupSeededDB creates a test database holding the given documents.
func SetupSeededDB(t *testing.T, entriesJSON, categoriesJSON string) *TestDB {
	t.Helper()
	db := SetupTestDB(t)
	db.Seed(entriesJSON, categoriesJSON)
	return db
}

// Seed stores both documents, failing the test on malformed input.
func (db *TestDB) Seed(entriesJSON, categoriesJSON string) {
	db.t.Helper()
	ctx := context.Background()

	for kind, doc := range map[storage.Kind]string{
		storage.KindEntries:    entriesJSON,
		storage.KindCategories: categoriesJSON,
	} {
		raws, err := decode.Records([]byte(doc))
		if err != nil {
			db.t.Fatalf("failed to split %s fixture: %v", kind, err)
		}
		if err := db.Storage.SaveRecords(ctx, kind, "testutil", raws, nil); err != nil {
			db.t.Fatalf("failed to seed %s: %v", kind, err)
		}
	}
}

// WriteCatalog writes both documents into a temporary directory under the
// names the file source expects and returns the directory.
func WriteCatalog(t *testing.T, entriesJSON, categoriesJSON string) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"pokemon_data.json":        entriesJSON,
		"pokemon_generations.json": categoriesJSON,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}
