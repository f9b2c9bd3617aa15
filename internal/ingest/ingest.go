// Package ingest implements the concurrent ingestion pipeline: it
// pulls a player's month batches from the archive, filters and parses
// individual games, and classifies each one into the counter tree for
// the color the tracked player held.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/repertoire/internal/archive"
	"github.com/discochess/repertoire/internal/classify"
	"github.com/discochess/repertoire/internal/stats"
	"github.com/discochess/repertoire/internal/taxonomy"
)

const (
	// DefaultFetchWorkers bounds concurrent month-batch fetches.
	DefaultFetchWorkers = 10

	// DefaultClassifyWorkers bounds concurrent classification within
	// one batch.
	DefaultClassifyWorkers = 10
)

// BatchError records a failed month-batch fetch. Batch failures are
// isolated: the rest of the run continues and the caller learns that
// coverage is partial.
type BatchError struct {
	MonthURL string
	Err      error
}

func (e BatchError) Error() string {
	return fmt.Sprintf("batch %s: %v", e.MonthURL, e.Err)
}

func (e BatchError) Unwrap() error { return e.Err }

// Result summarizes one finished run.
type Result struct {
	GamesClassified int64
	GamesSkipped    int64
	UnknownFamilies int64
	BatchesFetched  int
	BatchErrors     []BatchError
}

// Pipeline ingests one player's history into a white tree and a black
// tree. The two trees are independent; a game only touches the tree
// for the color the tracked player held.
type Pipeline struct {
	source   archive.Source
	white    *classify.Classifier
	black    *classify.Classifier
	fetchers int
	workers  int
	progress ProgressFunc
	stats    stats.Collector
	logger   *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFetchWorkers bounds concurrent month-batch fetches.
func WithFetchWorkers(n int) Option {
	return func(p *Pipeline) { p.fetchers = n }
}

// WithClassifyWorkers bounds concurrent per-game classification.
func WithClassifyWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithProgress sets the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Pipeline) { p.progress = fn }
}

// WithStats sets the stats collector.
func WithStats(c stats.Collector) Option {
	return func(p *Pipeline) { p.stats = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a Pipeline classifying into the two given trees.
func New(source archive.Source, white, black *classify.Classifier, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:   source,
		white:    white,
		black:    black,
		fetchers: DefaultFetchWorkers,
		workers:  DefaultClassifyWorkers,
		stats:    stats.NewNoop(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run ingests the trailing months of username's archive. A months
// value <= 0 means the entire archive. timeClasses filters games by
// time class; empty means all. Run returns an error only when the
// archive index itself cannot be fetched; individual batch failures
// are reported in the Result.
func (p *Pipeline) Run(ctx context.Context, username string, months int, timeClasses []string) (*Result, error) {
	archives, err := p.source.Archives(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching archive index: %w", err)
	}
	if months > 0 && months < len(archives) {
		archives = archives[len(archives)-months:]
	}

	accepted := make(map[string]bool, len(timeClasses))
	for _, tc := range timeClasses {
		accepted[tc] = true
	}

	run := &runState{
		pipeline: p,
		username: username,
		accepted: accepted,
		total:    len(archives),
	}

	sem := make(chan struct{}, p.fetchers)
	var wg sync.WaitGroup
	for _, monthURL := range archives {
		wg.Add(1)
		go func(monthURL string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			run.ingestBatch(ctx, monthURL)
		}(monthURL)
	}
	wg.Wait()

	res := &Result{
		GamesClassified: run.classified.Load(),
		GamesSkipped:    run.skipped.Load(),
		UnknownFamilies: run.unknown.Load(),
		BatchesFetched:  int(run.fetched.Load()),
	}
	run.mu.Lock()
	res.BatchErrors = run.batchErrs
	run.mu.Unlock()

	p.logger.Info("ingestion finished",
		zap.String("username", username),
		zap.Int64("classified", res.GamesClassified),
		zap.Int64("skipped", res.GamesSkipped),
		zap.Int64("unknownFamilies", res.UnknownFamilies),
		zap.Int("batches", res.BatchesFetched),
		zap.Int("batchErrors", len(res.BatchErrors)),
	)
	return res, nil
}

// runState carries the counters shared by one Run's goroutines.
type runState struct {
	pipeline *Pipeline
	username string
	accepted map[string]bool
	total    int

	classified atomic.Int64
	skipped    atomic.Int64
	unknown    atomic.Int64
	fetched    atomic.Int64

	mu        sync.Mutex
	batchErrs []BatchError
}

func (r *runState) ingestBatch(ctx context.Context, monthURL string) {
	p := r.pipeline

	start := time.Now()
	games, err := p.source.Month(ctx, monthURL)
	if err != nil {
		p.stats.IncCounter(stats.MetricBatchErrors, 1)
		p.logger.Warn("batch fetch failed",
			zap.String("month", monthURL),
			zap.Error(err),
		)
		r.mu.Lock()
		r.batchErrs = append(r.batchErrs, BatchError{MonthURL: monthURL, Err: err})
		r.mu.Unlock()
		return
	}
	p.stats.IncCounter(stats.MetricBatchesFetched, 1)
	p.stats.ObserveHistogram(stats.MetricBatchSeconds, time.Since(start).Seconds())
	fetched := int(r.fetched.Add(1))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	for i := range games {
		wg.Add(1)
		go func(g *archive.Game) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			r.ingestGame(g)
		}(&games[i])
	}
	wg.Wait()

	r.report(Progress{
		GamesProcessed: r.classified.Load(),
		BatchesFetched: fetched,
		BatchesTotal:   r.total,
	})
}

func (r *runState) ingestGame(g *archive.Game) {
	p := r.pipeline

	// Variants and unwanted time classes are not of interest and not
	// an error.
	if g.Rules != "chess" {
		return
	}
	if len(r.accepted) > 0 && !r.accepted[g.TimeClass] {
		return
	}

	opening, ok := g.Opening()
	if !ok {
		r.skipped.Add(1)
		p.stats.IncCounter(stats.MetricGamesSkipped, 1)
		return
	}

	classifier := p.black
	tracked, opponent := &g.Black, &g.White
	if strings.EqualFold(g.White.Username, r.username) {
		classifier = p.white
		tracked, opponent = &g.White, &g.Black
	}

	winInc := 0.0
	switch {
	case tracked.Result == "win":
		winInc = 1
	case opponent.Result != "win":
		winInc = 0.5 // neither side won: a draw by any method
	}

	rec := taxonomy.GameRecord{
		URL:         g.URL,
		TimeClass:   g.TimeClass,
		TimeControl: g.TimeControl,
		Date:        opening.Date,
		White:       participant(&g.White, &g.White == tracked, winInc),
		Black:       participant(&g.Black, &g.Black == tracked, winInc),
	}

	if err := classifier.Classify(opening.Code, opening.Slug, g.ID(), rec, winInc); err != nil {
		if errors.Is(err, classify.ErrUnknownFamily) {
			r.unknown.Add(1)
			p.stats.IncCounter(stats.MetricUnknownFamily, 1)
			p.logger.Warn("unknown family code",
				zap.String("code", opening.Code),
				zap.String("slug", opening.Slug),
				zap.String("game", g.URL),
			)
		}
		return
	}

	p.stats.IncCounter(stats.MetricGamesClassified, 1)
	r.report(Progress{
		GamesProcessed: r.classified.Add(1),
		BatchesFetched: int(r.fetched.Load()),
		BatchesTotal:   r.total,
	})
}

func participant(pl *archive.Player, isTracked bool, winInc float64) taxonomy.Participant {
	inc := winInc
	if !isTracked {
		inc = 1 - winInc
	}
	return taxonomy.Participant{
		Username: pl.Username,
		Rating:   pl.Rating,
		Result:   pl.Result,
		WinInc:   inc,
	}
}

func (r *runState) report(p Progress) {
	if r.pipeline.progress != nil {
		r.pipeline.progress(p)
	}
}
