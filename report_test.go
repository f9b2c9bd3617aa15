package repertoire

import (
	"errors"
	"testing"
)

func TestWinRate(t *testing.T) {
	tests := []struct {
		score float64
		games int
		want  int
	}{
		{0, 0, 0},
		{1, 1, 100},
		{0.5, 1, 50},
		{1.5, 3, 50},
		{2.5, 4, 63},  // 62.5 rounds up
		{1, 3, 33},    // 33.33 rounds down
		{2, 3, 67},    // 66.67 rounds up
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := winRate(tt.score, tt.games); got != tt.want {
			t.Errorf("winRate(%v, %d) = %d, want %d", tt.score, tt.games, got, tt.want)
		}
	}
}

func sampleReport() *Report {
	return &Report{
		Color: "white",
		Games: 10,
		Entries: []*Entry{
			{Key: "A", Name: "Alpha", Games: 6, Score: 2, WinRate: 33, Lines: []*Entry{
				{Key: "A1", Name: "Alpha Deep", Games: 4, Score: 1, WinRate: 25},
				{Key: "A2", Name: "Alpha Shallow", Games: 2, Score: 1, WinRate: 50},
			}},
			{Key: "B", Name: "Beta", Games: 4, Score: 3, WinRate: 75},
		},
	}
}

func TestResort_ByWinRate(t *testing.T) {
	r := sampleReport()
	out, err := Resort(r, MetricWinRate, true)
	if err != nil {
		t.Fatalf("Resort() error = %v", err)
	}

	if out.Entries[0].Key != "B" || out.Entries[1].Key != "A" {
		t.Errorf("top-level order = %s, %s, want B, A", out.Entries[0].Key, out.Entries[1].Key)
	}
	// Sub-lines re-sort too.
	alpha := findEntry(out.Entries, "A")
	if alpha.Lines[0].Key != "A2" {
		t.Errorf("sub-line order = %s first, want A2", alpha.Lines[0].Key)
	}

	// Input untouched.
	if r.Entries[0].Key != "A" || r.Entries[0].Lines[0].Key != "A1" {
		t.Error("Resort() mutated its input")
	}
}

func TestResort_Ascending(t *testing.T) {
	out, err := Resort(sampleReport(), MetricGames, false)
	if err != nil {
		t.Fatalf("Resort() error = %v", err)
	}
	if out.Entries[0].Key != "B" {
		t.Errorf("ascending first entry = %s, want B", out.Entries[0].Key)
	}
}

func TestResort_UnknownMetric(t *testing.T) {
	_, err := Resort(sampleReport(), Metric("popularity"), true)
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("Resort() error = %v, want ErrUnknownMetric", err)
	}
}

func TestPromote_Report(t *testing.T) {
	r := sampleReport()
	out, err := Promote(r, "A", "A1", "Alpha Deep System")
	if err != nil {
		t.Fatalf("Promote() error = %v", err)
	}

	alpha := findEntry(out.Entries, "A")
	if alpha.Games != 2 || alpha.Score != 1 {
		t.Errorf("family after promotion = %d games score %v, want 2 games score 1", alpha.Games, alpha.Score)
	}
	if alpha.WinRate != 50 {
		t.Errorf("family WinRate recomputed to %d, want 50", alpha.WinRate)
	}
	if len(alpha.Lines) != 1 || alpha.Lines[0].Key != "A2" {
		t.Error("promoted line still under its family")
	}

	promoted := findEntry(out.Entries, "A1")
	if promoted == nil {
		t.Fatal("promoted entry missing from top level")
	}
	if promoted.Name != "Alpha Deep System" || promoted.Games != 4 {
		t.Errorf("promoted = %s/%d games, want Alpha Deep System/4", promoted.Name, promoted.Games)
	}

	// Input untouched.
	if len(r.Entries) != 2 || r.Entries[0].Games != 6 {
		t.Error("Promote() mutated its input")
	}
}

func TestPromote_MissingTargets(t *testing.T) {
	r := sampleReport()
	if _, err := Promote(r, "Z", "A1", "X"); !errors.Is(err, ErrNotInReport) {
		t.Errorf("Promote() unknown family error = %v, want ErrNotInReport", err)
	}
	if _, err := Promote(r, "A", "Z1", "X"); !errors.Is(err, ErrNotInReport) {
		t.Errorf("Promote() unknown line error = %v, want ErrNotInReport", err)
	}
}
