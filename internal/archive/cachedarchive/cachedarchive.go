// Package cachedarchive wraps an archive source with an in-memory LRU
// cache of month batches. Closed months never change on chess.com, so
// repeat reports for the same player skip the network entirely.
package cachedarchive

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/discochess/repertoire/internal/archive"
)

// Compile-time check that Source implements archive.Source.
var _ archive.Source = (*Source)(nil)

// Source is a caching archive source.
type Source struct {
	next  archive.Source
	cache *lru.Cache[string, []archive.Game]

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// New wraps next with an LRU of capacity month batches.
func New(next archive.Source, capacity int) (*Source, error) {
	c, err := lru.New[string, []archive.Game](capacity)
	if err != nil {
		return nil, err
	}
	return &Source{next: next, cache: c}, nil
}

// Archives passes through uncached: the index gains a new entry every
// month and is cheap to fetch.
func (s *Source) Archives(ctx context.Context, username string) ([]string, error) {
	return s.next.Archives(ctx, username)
}

// Month returns the cached batch for monthURL, fetching and caching on
// miss.
func (s *Source) Month(ctx context.Context, monthURL string) ([]archive.Game, error) {
	if games, ok := s.cache.Get(monthURL); ok {
		s.hits.Add(1)
		return games, nil
	}
	s.misses.Add(1)

	games, err := s.next.Month(ctx, monthURL)
	if err != nil {
		return nil, err
	}
	s.cache.Add(monthURL, games)
	return games, nil
}

// Stats returns hit/miss counts and current size.
func (s *Source) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Size:   s.cache.Len(),
	}
}
