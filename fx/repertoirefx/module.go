// Package repertoirefx provides an fx module for a repertoire client
// backed by the public chess.com API and a disk report store.
package repertoirefx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/repertoire"
	"github.com/discochess/repertoire/internal/archive"
	"github.com/discochess/repertoire/internal/codec/zstdcodec"
	"github.com/discochess/repertoire/internal/stats"
	"github.com/discochess/repertoire/internal/stats/logger"
	"github.com/discochess/repertoire/internal/store/diskstore"
)

// Config holds configuration for the disk-backed repertoire client.
type Config struct {
	// DataDir is the directory saved reports are written to.
	DataDir string

	// CacheSize is the number of month batches to cache in memory.
	// Default is 100.
	CacheSize int

	// UserAgent overrides the User-Agent sent to chess.com.
	UserAgent string
}

// Module provides a disk-backed repertoire client.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("repertoire",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("repertoire.stats"))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *repertoire.Client
}

func newClient(p Params) (Result, error) {
	cacheSize := p.Config.CacheSize
	if cacheSize <= 0 {
		cacheSize = 100
	}

	st, err := diskstore.New(p.Config.DataDir, zstdcodec.New())
	if err != nil {
		return Result{}, err
	}

	opts := []repertoire.Option{
		repertoire.WithReportStore(st),
		repertoire.WithBatchCache(cacheSize),
		repertoire.WithStats(p.Collector),
		repertoire.WithLogger(p.Logger.Named("repertoire")),
	}
	if p.Config.UserAgent != "" {
		opts = append(opts, repertoire.WithArchiveOptions(archive.WithUserAgent(p.Config.UserAgent)))
	}

	client, err := repertoire.New(opts...)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
