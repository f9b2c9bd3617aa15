// Package memoryrepertoirefx provides an fx module for a fully
// in-memory repertoire client. Useful for testing.
package memoryrepertoirefx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/repertoire"
	"github.com/discochess/repertoire/internal/archive/memarchive"
	"github.com/discochess/repertoire/internal/stats"
	"github.com/discochess/repertoire/internal/stats/logger"
	"github.com/discochess/repertoire/internal/store/memstore"
)

// Module provides an in-memory repertoire client for testing.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("memoryrepertoire",
	fx.Provide(
		newStatsCollector,
		newMemArchive,
		newMemStore,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("repertoire.stats"))
}

func newMemArchive() *memarchive.Archive {
	return memarchive.New()
}

func newMemStore() *memstore.Store {
	return memstore.New()
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Archive   *memarchive.Archive
	Store     *memstore.Store
	Lifecycle fx.Lifecycle
}

// Result holds the provided client and its backing fakes.
type Result struct {
	fx.Out

	Client  *repertoire.Client
	Archive *memarchive.Archive // Exposed for test setup
	Store   *memstore.Store     // Exposed for test setup
}

func newClient(p Params) (Result, error) {
	client, err := repertoire.New(
		repertoire.WithArchive(p.Archive),
		repertoire.WithReportStore(p.Store),
		repertoire.WithStats(p.Collector),
		repertoire.WithLogger(p.Logger.Named("repertoire")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{
		Client:  client,
		Archive: p.Archive,
		Store:   p.Store,
	}, nil
}
