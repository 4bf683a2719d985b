package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/fruit-balance/storage"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

// TestStoreRoundTrip verifies put, overwrite and get
func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	if _, err := s.Get(ctx, "sound-enabled"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	if err := s.Put(ctx, "sound-enabled", []byte("true")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "sound-enabled", []byte("false")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	v, err := s.Get(ctx, "sound-enabled")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(v) != "false" {
		t.Errorf("Expected false, got %s", v)
	}
}

// TestStoreSurvivesReopen verifies values are durable across connections
func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTestStore(t)
	if err := s.Put(ctx, "sound-enabled", []byte("true")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	_ = s.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	v, err := reopened.Get(ctx, "sound-enabled")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(v) != "true" {
		t.Errorf("Expected true, got %s", v)
	}
}

// TestOpenRequiresPath verifies blank paths are rejected
func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Expected error for blank path")
	}
}

// TestExtractUp verifies only the Up section is executed
func TestExtractUp(t *testing.T) {
	got := extractUp("-- +migrate Up\nCREATE TABLE a (x);\n-- +migrate Down\nDROP TABLE a;\n")
	if got != "\nCREATE TABLE a (x);\n" {
		t.Errorf("Unexpected up section %q", got)
	}
	if extractUp("SELECT 1;") != "SELECT 1;" {
		t.Error("Expected content without markers to be returned as-is")
	}
}
