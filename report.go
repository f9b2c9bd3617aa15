package repertoire

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Metric selects the sort key for Resort.
type Metric string

const (
	// MetricGames sorts by game count.
	MetricGames Metric = "games"

	// MetricWinRate sorts by win rate.
	MetricWinRate Metric = "winRate"
)

// ErrUnknownMetric indicates an unrecognized sort metric.
var ErrUnknownMetric = errors.New("repertoire: unknown metric")

// ErrNotInReport indicates a Promote target absent from the report.
var ErrNotInReport = errors.New("repertoire: entry not found in report")

// Player is one side of a finished game as it appears in a report.
type Player struct {
	Username string  `json:"username"`
	Rating   int     `json:"rating"`
	Result   string  `json:"result"`
	WinInc   float64 `json:"winInc"`
}

// Game is a single classified game.
type Game struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	TimeClass   string `json:"timeClass"`
	TimeControl string `json:"timeControl"`
	Date        string `json:"date"`
	White       Player `json:"white"`
	Black       Player `json:"black"`
}

// Variant groups the games that reached one exact opening slug.
type Variant struct {
	Slug    string  `json:"slug"`
	Games   int     `json:"games"`
	Score   float64 `json:"score"`
	WinRate int     `json:"winRate"`

	// History is the variant's games, newest first.
	History []Game `json:"history,omitempty"`
}

// Entry is one node of the presentable report tree: an opening family
// at the top level, a line or sub-line below.
type Entry struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Games   int     `json:"games"`
	Score   float64 `json:"score"`
	WinRate int     `json:"winRate"`

	Variants []Variant `json:"variants,omitempty"`
	Lines    []*Entry  `json:"lines,omitempty"`
}

// Report is the presentable opening breakdown for one color.
type Report struct {
	Color string `json:"color"`

	// Games is the total number of classified games, including any
	// dropped later by name deduplication.
	Games int `json:"games"`

	Entries []*Entry `json:"entries"`
}

// winRate converts an accumulated score into a whole percentage.
// Zero games yields zero rather than a division error.
func winRate(score float64, games int) int {
	if games == 0 {
		return 0
	}
	return int(math.Round(score / float64(games) * 100))
}

// Resort returns a copy of the report ordered by the given metric at
// every level. The input is left untouched. Variants keep their
// game-count order regardless of metric.
func Resort(r *Report, metric Metric, descending bool) (*Report, error) {
	var key func(*Entry) float64
	switch metric {
	case MetricGames:
		key = func(e *Entry) float64 { return float64(e.Games) }
	case MetricWinRate:
		key = func(e *Entry) float64 { return float64(e.WinRate) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	out := r.clone()
	var sortLines func(entries []*Entry)
	sortLines = func(entries []*Entry) {
		sort.SliceStable(entries, func(i, j int) bool {
			if descending {
				return key(entries[i]) > key(entries[j])
			}
			return key(entries[i]) < key(entries[j])
		})
		for _, e := range entries {
			sortLines(e.Lines)
		}
	}
	sortLines(out.Entries)
	return out, nil
}

// Promote returns a copy of the report with one line lifted out of its
// family into a top-level entry of its own, renamed to name. The
// family's counters shrink by the promoted line's share. The promoted
// entry is appended; callers wanting it ranked re-sort with Resort.
func Promote(r *Report, familyKey, childKey, name string) (*Report, error) {
	out := r.clone()

	family := findEntry(out.Entries, familyKey)
	if family == nil {
		return nil, fmt.Errorf("%w: family %q", ErrNotInReport, familyKey)
	}
	idx := -1
	for i, line := range family.Lines {
		if line.Key == childKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: line %q under %q", ErrNotInReport, childKey, familyKey)
	}

	promoted := family.Lines[idx]
	family.Lines = append(family.Lines[:idx], family.Lines[idx+1:]...)
	family.Games -= promoted.Games
	family.Score -= promoted.Score
	family.WinRate = winRate(family.Score, family.Games)

	promoted.Name = name
	out.Entries = append(out.Entries, promoted)
	return out, nil
}

func findEntry(entries []*Entry, key string) *Entry {
	for _, e := range entries {
		if e.Key == key {
			return e
		}
	}
	return nil
}

func (r *Report) clone() *Report {
	out := &Report{Color: r.Color, Games: r.Games}
	out.Entries = cloneEntries(r.Entries)
	return out
}

func cloneEntries(entries []*Entry) []*Entry {
	if entries == nil {
		return nil
	}
	out := make([]*Entry, len(entries))
	for i, e := range entries {
		c := *e
		c.Lines = cloneEntries(e.Lines)
		c.Variants = make([]Variant, len(e.Variants))
		copy(c.Variants, e.Variants)
		out[i] = &c
	}
	return out
}
