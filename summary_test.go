package repertoire

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	r := &Report{
		Color: "white",
		Entries: []*Entry{
			{Name: "Alpha", Games: 6, Score: 3, WinRate: 50},
			{Name: "Beta", Games: 4, Score: 3, WinRate: 75},
		},
	}

	s := Summarize(r)
	if s.Openings != 2 || s.Games != 10 {
		t.Errorf("Openings/Games = %d/%d, want 2/10", s.Openings, s.Games)
	}
	if s.WinRate != 60 {
		t.Errorf("WinRate = %d, want 60", s.WinRate)
	}
	// Game-weighted mean: (50*6 + 75*4) / 10.
	if math.Abs(s.MeanWinRate-60) > 1e-9 {
		t.Errorf("MeanWinRate = %v, want 60", s.MeanWinRate)
	}
	if s.StdDevWinRate <= 0 {
		t.Errorf("StdDevWinRate = %v, want > 0", s.StdDevWinRate)
	}
	if s.Best != "Beta" || s.Worst != "Alpha" {
		t.Errorf("Best/Worst = %s/%s, want Beta/Alpha", s.Best, s.Worst)
	}
	if s.MaxWinRate != 75 || s.MinWinRate != 50 {
		t.Errorf("Max/MinWinRate = %d/%d, want 75/50", s.MaxWinRate, s.MinWinRate)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&Report{Color: "black"})
	if s.Openings != 0 || s.Games != 0 || s.WinRate != 0 {
		t.Errorf("Summarize(empty) = %+v, want zeros", s)
	}
}

func TestSummarize_SingleOpening(t *testing.T) {
	r := &Report{Entries: []*Entry{{Name: "Only", Games: 3, Score: 3, WinRate: 100}}}
	s := Summarize(r)
	if s.StdDevWinRate != 0 {
		t.Errorf("StdDevWinRate = %v, want 0 for a single opening", s.StdDevWinRate)
	}
	if s.Best != "Only" || s.Worst != "Only" {
		t.Errorf("Best/Worst = %s/%s, want Only/Only", s.Best, s.Worst)
	}
}
