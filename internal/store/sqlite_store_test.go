package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	s, err := OpenSQLite(path, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, _ := openTestSQLite(t)
	ctx := context.Background()

	if err := s.Set(ctx, "bookmarkedNews", `["1","2"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "bookmarkedNews", `["2"]`); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok := s.Get(ctx, "bookmarkedNews")
	if !ok || got != `["2"]` {
		t.Fatalf("expected upserted value, got %q ok=%v", got, ok)
	}

	if err := s.Delete(ctx, "bookmarkedNews"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.Get(ctx, "bookmarkedNews"); ok {
		t.Fatalf("expected key to be gone")
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	s, path := openTestSQLite(t)
	ctx := context.Background()
	if err := s.Set(ctx, "user-storage", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}
	_ = s.Close()

	reopened, err := OpenSQLite(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if got, ok := reopened.Get(ctx, "user-storage"); !ok || got != "payload" {
		t.Fatalf("expected persisted value, got %q ok=%v", got, ok)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  ", nil); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestClosedSQLiteStoreReadsAsAbsent(t *testing.T) {
	var s *SQLiteStore
	if _, ok := s.Get(context.Background(), "k"); ok {
		t.Fatalf("nil store must report absent")
	}
	if err := s.Set(context.Background(), "k", "v"); err == nil {
		t.Fatalf("expected error writing to nil store")
	}
}
