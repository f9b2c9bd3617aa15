package repertoire

import (
	"go.uber.org/zap"

	"github.com/discochess/repertoire/internal/archive"
	"github.com/discochess/repertoire/internal/ingest"
	"github.com/discochess/repertoire/internal/stats"
	"github.com/discochess/repertoire/internal/store"
)

// Option configures a Client.
type Option interface {
	apply(*Client)
}

type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) {
	f(c)
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *Client) {
		c.logger = logger
	})
}

// WithStats sets the metrics collector. Defaults to a no-op collector.
func WithStats(collector stats.Collector) Option {
	return optionFunc(func(c *Client) {
		c.stats = collector
	})
}

// WithArchive replaces the chess.com archive client. Used to point the
// Client at a fake or a recorded archive.
func WithArchive(api archive.API) Option {
	return optionFunc(func(c *Client) {
		c.api = api
	})
}

// WithArchiveOptions configures the default chess.com archive client.
// Ignored when WithArchive supplies a client directly.
func WithArchiveOptions(opts ...archive.Option) Option {
	return optionFunc(func(c *Client) {
		c.archiveOpts = append(c.archiveOpts, opts...)
	})
}

// WithBatchCache caches up to capacity month batches in memory. Closed
// months never change upstream, so repeat reports reuse them.
func WithBatchCache(capacity int) Option {
	return optionFunc(func(c *Client) {
		c.cacheCapacity = capacity
	})
}

// WithReportStore sets the backend SaveReport and LoadReport use.
// Without one, persistence calls fail with ErrNoStore.
func WithReportStore(s store.Store) Option {
	return optionFunc(func(c *Client) {
		c.store = s
	})
}

// WithFetchWorkers bounds concurrent month-batch fetches.
func WithFetchWorkers(n int) Option {
	return optionFunc(func(c *Client) {
		c.fetchers = n
	})
}

// WithClassifyWorkers bounds concurrent per-game classification.
func WithClassifyWorkers(n int) Option {
	return optionFunc(func(c *Client) {
		c.workers = n
	})
}

// WithProgress sets a callback invoked as ingestion advances.
func WithProgress(fn ingest.ProgressFunc) Option {
	return optionFunc(func(c *Client) {
		c.progress = fn
	})
}

// WithPromotions replaces the default report promotions.
func WithPromotions(promotions ...Promotion) Option {
	return optionFunc(func(c *Client) {
		c.promotions = promotions
	})
}
