// Package archive is a thin client for the chess.com published-data
// API: player profile, rating stats, the monthly archive index, and
// individual month batches of finished games.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// DefaultBaseURL is the chess.com published-data API root.
const DefaultBaseURL = "https://api.chess.com/pub"

// DefaultUserAgent identifies this client to the API. chess.com
// throttles requests without a User-Agent.
const DefaultUserAgent = "repertoire (github.com/discochess/repertoire)"

// ErrNotFound indicates the requested player does not exist.
var ErrNotFound = errors.New("archive: player not found")

// Source is the subset of the API the ingestion pipeline consumes.
// It is satisfied by *Client and by the caching wrapper in
// cachedarchive.
type Source interface {
	// Archives returns the ordered list of month-batch URLs for a
	// player, oldest first.
	Archives(ctx context.Context, username string) ([]string, error)

	// Month fetches one month batch by its archive URL.
	Month(ctx context.Context, monthURL string) ([]Game, error)
}

// API is the full surface the report builder consumes.
type API interface {
	Source

	// Profile fetches a player's public profile.
	Profile(ctx context.Context, username string) (*Profile, error)

	// Stats fetches a player's per-time-class rating stats.
	Stats(ctx context.Context, username string) (Stats, error)
}

// Client fetches from the chess.com API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Compile-time check that Client implements Source.
var _ Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Client) { a.httpClient = c }
}

// WithBaseURL overrides the API root. Used by tests to point the
// client at a local server.
func WithBaseURL(u string) Option {
	return func(a *Client) { a.baseURL = u }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(a *Client) { a.userAgent = ua }
}

// NewClient creates a Client with sensible defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 0, // per-request via context
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile fetches a player's public profile.
// Returns ErrNotFound for unknown usernames.
func (c *Client) Profile(ctx context.Context, username string) (*Profile, error) {
	var p Profile
	u := fmt.Sprintf("%s/player/%s", c.baseURL, url.PathEscape(username))
	if err := c.getJSON(ctx, u, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Stats fetches a player's per-time-class rating stats.
func (c *Client) Stats(ctx context.Context, username string) (Stats, error) {
	var s Stats
	u := fmt.Sprintf("%s/player/%s/stats", c.baseURL, url.PathEscape(username))
	if err := c.getJSON(ctx, u, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Archives returns the player's month-batch URLs, oldest first. The
// API already returns them in chronological order.
func (c *Client) Archives(ctx context.Context, username string) ([]string, error) {
	var idx struct {
		Archives []string `json:"archives"`
	}
	u := fmt.Sprintf("%s/player/%s/games/archives", c.baseURL, url.PathEscape(username))
	if err := c.getJSON(ctx, u, &idx); err != nil {
		return nil, err
	}
	return idx.Archives, nil
}

// Month fetches one month batch of finished games.
func (c *Client) Month(ctx context.Context, monthURL string) ([]Game, error) {
	var batch struct {
		Games []Game `json:"games"`
	}
	if err := c.getJSON(ctx, monthURL, &batch); err != nil {
		return nil, err
	}
	return batch.Games, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path.Base(req.URL.Path))
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("fetching %s: unexpected status %s", u, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", u, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing %s: %w", u, err)
	}
	return nil
}
