package ingest

// Progress is a best-effort snapshot of a running ingestion, delivered
// after each classified game and after each fetched batch.
type Progress struct {
	GamesProcessed int64
	BatchesFetched int
	BatchesTotal   int
}

// ProgressFunc receives progress updates. Implementations must be safe
// for concurrent calls; updates carry no ordering guarantee beyond the
// running totals being monotonic.
type ProgressFunc func(Progress)
