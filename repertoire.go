// Package repertoire builds opening-repertoire reports for chess.com
// players: it pulls a player's archived games, classifies each one
// into a curated opening taxonomy, and aggregates the result into
// per-color win-rate breakdowns.
package repertoire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/repertoire/internal/archive"
	"github.com/discochess/repertoire/internal/archive/cachedarchive"
	"github.com/discochess/repertoire/internal/classify"
	"github.com/discochess/repertoire/internal/ingest"
	"github.com/discochess/repertoire/internal/stats"
	"github.com/discochess/repertoire/internal/store"
	"github.com/discochess/repertoire/internal/taxonomy"
)

var (
	// ErrPlayerNotFound indicates the username does not exist on
	// chess.com.
	ErrPlayerNotFound = errors.New("repertoire: player not found")

	// ErrReportNotFound indicates no saved report under the given key.
	ErrReportNotFound = errors.New("repertoire: report not found")

	// ErrNoStore indicates a persistence call on a Client built
	// without a report store.
	ErrNoStore = errors.New("repertoire: no report store configured")

	// ErrClosed indicates an operation on a closed Client.
	ErrClosed = errors.New("repertoire: client closed")
)

// DefaultTimeClasses are the standard chess.com time classes, used to
// look up ratings when a report does not filter by time class.
var DefaultTimeClasses = []string{"bullet", "blitz", "rapid", "daily"}

// Rating is a current/peak rating pair for one time class.
type Rating struct {
	Current int `json:"current"`
	Peak    int `json:"peak"`
}

// PlayerMeta identifies the player a report describes.
type PlayerMeta struct {
	Username string            `json:"username"`
	Name     string            `json:"name,omitempty"`
	Title    string            `json:"title,omitempty"`
	Ratings  map[string]Rating `json:"ratings,omitempty"`
}

// Coverage reports how complete a run was. Batch fetch failures do not
// abort a run; they show up here so callers know the breakdown may be
// missing months.
type Coverage struct {
	BatchesFetched  int      `json:"batchesFetched"`
	BatchErrors     []string `json:"batchErrors,omitempty"`
	GamesClassified int64    `json:"gamesClassified"`
	GamesSkipped    int64    `json:"gamesSkipped"`
	UnknownFamilies int64    `json:"unknownFamilies"`
}

// Result is one finished report build: both colors' breakdowns plus
// player identity and run coverage.
type Result struct {
	Player      PlayerMeta `json:"player"`
	Months      int        `json:"months"` // 0 means the entire archive
	TimeClasses []string   `json:"timeClasses,omitempty"`
	GeneratedAt time.Time  `json:"generatedAt"`
	White       *Report    `json:"white"`
	Black       *Report    `json:"black"`
	Coverage    Coverage   `json:"coverage"`
}

// Client builds and persists repertoire reports. A Client is safe for
// concurrent use; each BuildReport call works on its own counter trees.
type Client struct {
	api    archive.API
	source archive.Source
	store  store.Store

	logger     *zap.Logger
	stats      stats.Collector
	fetchers   int
	workers    int
	progress   ingest.ProgressFunc
	promotions []Promotion

	archiveOpts   []archive.Option
	cacheCapacity int

	closed atomic.Bool
}

// New creates a Client. Without options it talks to the public
// chess.com API, logs nothing, and keeps reports only in the returned
// Result.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		logger:     zap.NewNop(),
		stats:      stats.NewNoop(),
		fetchers:   ingest.DefaultFetchWorkers,
		workers:    ingest.DefaultClassifyWorkers,
		promotions: defaultPromotions(),
	}
	for _, opt := range opts {
		opt.apply(c)
	}

	if c.api == nil {
		c.api = archive.NewClient(c.archiveOpts...)
	}
	c.source = c.api
	if c.cacheCapacity > 0 {
		cached, err := cachedarchive.New(c.api, c.cacheCapacity)
		if err != nil {
			return nil, fmt.Errorf("creating batch cache: %w", err)
		}
		c.source = cached
	}

	return c, nil
}

// BuildReport pulls the trailing months of username's archive and
// builds both colors' breakdowns. A months value <= 0 means the entire
// archive. timeClasses filters which games count; empty means all.
func (c *Client) BuildReport(ctx context.Context, username string, months int, timeClasses []string) (*Result, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	profile, err := c.api.Profile(ctx, username)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, username)
		}
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	meta := PlayerMeta{
		Username: profile.DisplayName(),
		Name:     profile.Name,
		Title:    profile.Title,
	}
	if playerStats, err := c.api.Stats(ctx, username); err != nil {
		// Ratings are decoration; a report without them still stands.
		c.logger.Warn("fetching stats failed", zap.String("username", username), zap.Error(err))
	} else {
		classes := timeClasses
		if len(classes) == 0 {
			classes = DefaultTimeClasses
		}
		if ratings := playerStats.Ratings(classes); len(ratings) > 0 {
			meta.Ratings = make(map[string]Rating, len(ratings))
			for tc, r := range ratings {
				meta.Ratings[tc] = Rating{Current: r.Current, Peak: r.Peak}
			}
		}
	}

	whiteTree, err := taxonomy.New()
	if err != nil {
		return nil, fmt.Errorf("building white tree: %w", err)
	}
	blackTree, err := taxonomy.New()
	if err != nil {
		return nil, fmt.Errorf("building black tree: %w", err)
	}

	pipeline := ingest.New(c.source, classify.New(whiteTree), classify.New(blackTree),
		ingest.WithFetchWorkers(c.fetchers),
		ingest.WithClassifyWorkers(c.workers),
		ingest.WithProgress(c.progress),
		ingest.WithStats(c.stats),
		ingest.WithLogger(c.logger),
	)
	run, err := pipeline.Run(ctx, username, months, timeClasses)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, username)
		}
		return nil, err
	}

	white, err := buildReport(whiteTree, "white", c.promotions)
	if err != nil {
		return nil, err
	}
	black, err := buildReport(blackTree, "black", c.promotions)
	if err != nil {
		return nil, err
	}

	if months < 0 {
		months = 0
	}
	res := &Result{
		Player:      meta,
		Months:      months,
		TimeClasses: timeClasses,
		GeneratedAt: time.Now().UTC(),
		White:       white,
		Black:       black,
		Coverage: Coverage{
			BatchesFetched:  run.BatchesFetched,
			GamesClassified: run.GamesClassified,
			GamesSkipped:    run.GamesSkipped,
			UnknownFamilies: run.UnknownFamilies,
		},
	}
	for _, be := range run.BatchErrors {
		res.Coverage.BatchErrors = append(res.Coverage.BatchErrors, be.Error())
	}

	c.stats.IncCounter(stats.MetricReportsBuilt, 1)
	c.logger.Info("report built",
		zap.String("username", meta.Username),
		zap.Int("months", months),
		zap.Int64("games", run.GamesClassified),
		zap.Int("batchErrors", len(run.BatchErrors)),
	)
	return res, nil
}

// SaveReport persists a result under key via the configured store.
func (c *Client) SaveReport(ctx context.Context, key string, res *Result) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if c.store == nil {
		return ErrNoStore
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := c.store.WriteReport(ctx, key, data); err != nil {
		return fmt.Errorf("saving report %q: %w", key, err)
	}

	c.stats.IncCounter(stats.MetricReportsSaved, 1)
	c.logger.Info("report saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// LoadReport reads a previously saved result.
func (c *Client) LoadReport(ctx context.Context, key string) (*Result, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if c.store == nil {
		return nil, ErrNoStore
	}

	data, err := c.store.ReadReport(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, key)
		}
		return nil, fmt.Errorf("loading report %q: %w", key, err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decoding report %q: %w", key, err)
	}
	return &res, nil
}

// ListReports returns the keys of all saved reports.
func (c *Client) ListReports(ctx context.Context) ([]string, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if c.store == nil {
		return nil, ErrNoStore
	}
	return c.store.ListReports(ctx)
}

// Close releases the report store, if any. Further calls on the Client
// fail with ErrClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
