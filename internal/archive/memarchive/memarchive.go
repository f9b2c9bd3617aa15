// Package memarchive provides an in-memory archive implementation for
// testing and offline use.
package memarchive

import (
	"context"
	"fmt"
	"sync"

	"github.com/discochess/repertoire/internal/archive"
)

// Compile-time check that Archive implements archive.API.
var _ archive.API = (*Archive)(nil)

// Archive is an in-memory archive for testing.
type Archive struct {
	mu       sync.RWMutex
	profiles map[string]*archive.Profile
	stats    map[string]archive.Stats
	index    map[string][]string
	months   map[string][]archive.Game
}

// New creates an empty in-memory archive.
func New() *Archive {
	return &Archive{
		profiles: make(map[string]*archive.Profile),
		stats:    make(map[string]archive.Stats),
		index:    make(map[string][]string),
		months:   make(map[string][]archive.Game),
	}
}

// SetPlayer registers a player's profile and stats (for test setup).
func (a *Archive) SetPlayer(username string, p *archive.Profile, s archive.Stats) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.profiles[username] = p
	a.stats[username] = s
}

// SetMonth registers a month batch and appends it to the player's
// archive index (for test setup).
func (a *Archive) SetMonth(username, monthURL string, games []archive.Game) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.index[username] = append(a.index[username], monthURL)
	a.months[monthURL] = games
}

// Profile returns the registered profile.
func (a *Archive) Profile(ctx context.Context, username string) (*archive.Profile, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	p, ok := a.profiles[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", archive.ErrNotFound, username)
	}
	return p, nil
}

// Stats returns the registered stats.
func (a *Archive) Stats(ctx context.Context, username string) (archive.Stats, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.stats[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", archive.ErrNotFound, username)
	}
	return s, nil
}

// Archives returns the registered month URLs in insertion order.
func (a *Archive) Archives(ctx context.Context, username string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if _, ok := a.profiles[username]; !ok {
		return nil, fmt.Errorf("%w: %s", archive.ErrNotFound, username)
	}
	return a.index[username], nil
}

// Month returns a registered batch.
func (a *Archive) Month(ctx context.Context, monthURL string) ([]archive.Game, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	games, ok := a.months[monthURL]
	if !ok {
		return nil, fmt.Errorf("month %s not registered", monthURL)
	}
	return games, nil
}
