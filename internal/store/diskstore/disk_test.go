package diskstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/discochess/repertoire/internal/codec/noopcodec"
	"github.com/discochess/repertoire/internal/codec/zstdcodec"
	"github.com/discochess/repertoire/internal/store"
)

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s, err := New(t.TempDir(), zstdcodec.New())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	data := []byte(`{"player":"test"}`)
	if err := s.WriteReport(ctx, "test-key", data); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	got, err := s.ReadReport(ctx, "test-key")
	if err != nil {
		t.Fatalf("ReadReport() error = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("ReadReport() = %q, want %q", got, data)
	}
}

func TestStore_FileNaming(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zstdcodec.New())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	if err := s.WriteReport(context.Background(), "named", []byte("x")); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "reports", "named.json.zst")); err != nil {
		t.Errorf("expected named.json.zst on disk: %v", err)
	}
}

func TestStore_ReadNotFound(t *testing.T) {
	s, err := New(t.TempDir(), noopcodec.New())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	_, err = s.ReadReport(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ReadReport() error = %v, want ErrNotFound", err)
	}
}

func TestStore_RejectsBadKeys(t *testing.T) {
	s, err := New(t.TempDir(), noopcodec.New())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	for _, key := range []string{"", "a/b", ".."} {
		if err := s.WriteReport(ctx, key, []byte("x")); !errors.Is(err, store.ErrBadKey) {
			t.Errorf("WriteReport(%q) error = %v, want ErrBadKey", key, err)
		}
	}
}

func TestStore_ListReports(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zstdcodec.New())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	for _, key := range []string{"alpha", "beta"} {
		if err := s.WriteReport(ctx, key, []byte("x")); err != nil {
			t.Fatalf("WriteReport(%q) error = %v", key, err)
		}
	}
	// Stray files with the wrong suffix are ignored.
	if err := os.WriteFile(filepath.Join(dir, "reports", "junk.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	keys, err := s.ListReports(ctx)
	if err != nil {
		t.Fatalf("ListReports() error = %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("ListReports() = %v, want [alpha beta]", keys)
	}
}
