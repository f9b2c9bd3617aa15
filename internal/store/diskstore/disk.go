// Package diskstore implements a disk-based filesystem storage backend.
package diskstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/discochess/repertoire/internal/codec"
	"github.com/discochess/repertoire/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

const reportsDir = "reports"

// Store is a disk-based filesystem storage backend.
type Store struct {
	root  string
	codec codec.Codec
}

// New creates a new disk store rooted at the given directory, creating
// the reports subdirectory if needed. The codec handles
// compression/decompression.
func New(root string, codec codec.Codec) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, reportsDir), 0755); err != nil {
		return nil, fmt.Errorf("creating reports directory: %w", err)
	}
	return &Store{
		root:  root,
		codec: codec,
	}, nil
}

// WriteReport compresses and writes a report payload.
func (s *Store) WriteReport(ctx context.Context, key string, data []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var buf bytes.Buffer
	writer, err := s.codec.Writer(&buf)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("compressing report: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("compressing report: %w", err)
	}

	// Write then rename so readers never observe a partial payload.
	path := s.reportPath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadReport reads and decompresses a report payload.
func (s *Store) ReadReport(ctx context.Context, key string) ([]byte, error) {
	if err := store.ValidateKey(key); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	compressed, err := os.ReadFile(s.reportPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("reading report: %w", err)
	}

	reader, err := s.codec.Reader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompressing report: %w", err)
	}
	return data, nil
}

// ListReports returns the keys of all stored reports.
func (s *Store) ListReports(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, reportsDir))
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	suffix := s.suffix()
	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) || strings.HasSuffix(name, ".tmp") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, suffix))
	}
	return keys, nil
}

// Close releases any resources held by the store.
func (s *Store) Close() error {
	return nil
}

func (s *Store) reportPath(key string) string {
	return filepath.Join(s.root, reportsDir, key+s.suffix())
}

func (s *Store) suffix() string {
	if ext := s.codec.Extension(); ext != "" {
		return ".json." + ext
	}
	return ".json"
}
