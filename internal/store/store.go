// Package store defines the storage backend interface for saved
// report payloads. Payloads are opaque bytes keyed by a caller-chosen
// key; serialization and compression are the caller's concern.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when a report does not exist in the store.
var ErrNotFound = errors.New("store: report not found")

// ErrBadKey is returned for keys that could escape the store's
// namespace.
var ErrBadKey = errors.New("store: invalid report key")

// Store defines the interface for report storage backends.
// Implementations handle path formats and storage details internally.
type Store interface {
	// WriteReport stores data under key, replacing any previous
	// payload.
	WriteReport(ctx context.Context, key string, data []byte) error

	// ReadReport reads the payload stored under key.
	ReadReport(ctx context.Context, key string) ([]byte, error)

	// ListReports returns all stored keys, in no particular order.
	ListReports(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// ValidateKey rejects empty keys and keys containing path separators.
func ValidateKey(key string) error {
	if key == "" || strings.ContainsAny(key, "/\\") || key == "." || key == ".." {
		return ErrBadKey
	}
	return nil
}
