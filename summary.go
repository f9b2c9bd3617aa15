package repertoire

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary condenses one color's report into headline numbers: the
// overall win rate plus the game-weighted spread of win rates across
// top-level openings. A wide spread flags a repertoire with both
// strong and weak openings.
type Summary struct {
	Openings int `json:"openings"`
	Games    int `json:"games"`

	// WinRate is the overall win percentage across all entries.
	WinRate int `json:"winRate"`

	// MeanWinRate and StdDevWinRate describe the per-opening win
	// rates, weighted by each opening's game count.
	MeanWinRate   float64 `json:"meanWinRate"`
	StdDevWinRate float64 `json:"stdDevWinRate"`

	// Best and Worst name the highest and lowest win-rate openings;
	// MaxWinRate and MinWinRate carry their rates.
	Best       string `json:"best,omitempty"`
	Worst      string `json:"worst,omitempty"`
	MaxWinRate int    `json:"maxWinRate"`
	MinWinRate int    `json:"minWinRate"`
}

// Summarize computes a Summary over the report's top-level entries.
func Summarize(r *Report) Summary {
	s := Summary{Openings: len(r.Entries)}
	if len(r.Entries) == 0 {
		return s
	}

	rates := make([]float64, len(r.Entries))
	weights := make([]float64, len(r.Entries))
	score := 0.0
	best, worst := r.Entries[0], r.Entries[0]
	for i, e := range r.Entries {
		rates[i] = float64(e.WinRate)
		weights[i] = float64(e.Games)
		s.Games += e.Games
		score += e.Score
		if e.WinRate > best.WinRate {
			best = e
		}
		if e.WinRate < worst.WinRate {
			worst = e
		}
	}

	s.WinRate = winRate(score, s.Games)
	s.MeanWinRate = stat.Mean(rates, weights)
	s.Best, s.MaxWinRate = best.Name, best.WinRate
	s.Worst, s.MinWinRate = worst.Name, worst.WinRate

	// StdDev is NaN for a single sample.
	if sd := stat.StdDev(rates, weights); !math.IsNaN(sd) {
		s.StdDevWinRate = sd
	}
	return s
}
