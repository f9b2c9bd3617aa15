// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Ingestion metrics.
	MetricGamesClassified = "repertoire_games_classified_total"
	MetricGamesSkipped    = "repertoire_games_skipped_total"
	MetricUnknownFamily   = "repertoire_unknown_family_total"
	MetricBatchesFetched  = "repertoire_batches_fetched_total"
	MetricBatchErrors     = "repertoire_batch_errors_total"
	MetricBatchSeconds    = "repertoire_batch_fetch_seconds"

	// Report metrics.
	MetricReportsBuilt = "repertoire_reports_built_total"
	MetricReportsSaved = "repertoire_reports_saved_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
