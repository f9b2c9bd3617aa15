package repertoire

import (
	"testing"

	"github.com/discochess/repertoire/internal/classify"
	"github.com/discochess/repertoire/internal/taxonomy"
)

func classifiedTree(t *testing.T, games ...[2]string) *taxonomy.Tree {
	t.Helper()
	tree, err := taxonomy.New()
	if err != nil {
		t.Fatalf("taxonomy.New() error = %v", err)
	}
	c := classify.New(tree)
	for i, g := range games {
		code, slug := g[0], g[1]
		id := string(rune('a' + i))
		rec := taxonomy.GameRecord{URL: id, Date: "2026.07.01"}
		if err := c.Classify(code, slug, id, rec, 1); err != nil {
			t.Fatalf("Classify(%q, %q) error = %v", code, slug, err)
		}
	}
	return tree
}

func TestBuildReport_CaroKannBreakdown(t *testing.T) {
	// Three Advance games: a win, a draw, and a win in the same
	// variation, plus one Exchange game lost.
	tree, err := taxonomy.New()
	if err != nil {
		t.Fatalf("taxonomy.New() error = %v", err)
	}
	c := classify.New(tree)
	tal := "Caro-Kann-Defense-Advance-Variation-Tal-Variation"
	short := "Caro-Kann-Defense-Advance-Variation-Short-Variation"
	exch := "Caro-Kann-Defense-Exchange-Variation"
	for _, g := range []struct {
		id, slug string
		winInc   float64
		date     string
	}{
		{"g1", tal, 1, "2026.07.01"},
		{"g2", short, 0.5, "2026.07.03"},
		{"g3", tal, 1, "2026.07.02"},
		{"g4", exch, 0, "2026.07.04"},
	} {
		rec := taxonomy.GameRecord{URL: g.id, Date: g.date}
		if err := c.Classify("B12", g.slug, g.id, rec, g.winInc); err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
	}

	r, err := buildReport(tree, "white", nil)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}
	if r.Games != 4 {
		t.Errorf("Games = %d, want 4", r.Games)
	}
	if len(r.Entries) != 1 {
		t.Fatalf("Entries = %d, want only the Caro-Kann family", len(r.Entries))
	}

	family := r.Entries[0]
	if family.Name != "Caro-Kann Defense" || family.Games != 4 {
		t.Errorf("family = %s/%d games, want Caro-Kann Defense/4", family.Name, family.Games)
	}
	// 2.5 points in 4 games rounds to 63.
	if family.WinRate != 63 {
		t.Errorf("family WinRate = %d, want 63", family.WinRate)
	}

	if len(family.Lines) != 2 {
		t.Fatalf("family Lines = %d, want 2", len(family.Lines))
	}
	advance := family.Lines[0]
	if advance.Key != "Advance" || advance.Games != 3 {
		t.Errorf("top line = %s/%d games, want Advance/3 (sorted by games)", advance.Key, advance.Games)
	}
	// 2.5 points in 3 games rounds to 83.
	if advance.WinRate != 83 {
		t.Errorf("Advance WinRate = %d, want 83", advance.WinRate)
	}

	talLine := advance.Lines[0]
	if talLine.Key != "Tal-" || talLine.Games != 2 {
		t.Fatalf("Advance top sub-line = %s/%d, want Tal-/2", talLine.Key, talLine.Games)
	}
	if len(talLine.Variants) != 1 {
		t.Fatalf("Tal variants = %d, want 1", len(talLine.Variants))
	}
	v := talLine.Variants[0]
	if v.Slug != tal || v.Games != 2 || v.WinRate != 100 {
		t.Errorf("variant = %+v", v)
	}
	// History is newest first.
	if len(v.History) != 2 || v.History[0].ID != "g3" || v.History[1].ID != "g1" {
		t.Errorf("History order = %v, want g3 then g1", v.History)
	}
}

func TestBuildReport_PrunesEmptyFamilies(t *testing.T) {
	tree := classifiedTree(t, [2]string{"B12", "Caro-Kann-Defense-Exchange-Variation"})

	r, err := buildReport(tree, "white", nil)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}
	for _, e := range r.Entries {
		if e.Games == 0 {
			t.Errorf("entry %q has zero games", e.Name)
		}
	}
	if len(r.Entries) != 1 {
		t.Errorf("Entries = %d, want 1", len(r.Entries))
	}
}

func TestBuildReport_SortsByGameCount(t *testing.T) {
	tree := classifiedTree(t,
		[2]string{"B12", "Caro-Kann-Defense-Exchange-Variation"},
		[2]string{"C00", "French-Defense-Advance-Variation"},
		[2]string{"C01", "French-Defense-Exchange-Variation"},
	)

	r, err := buildReport(tree, "white", nil)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}
	if len(r.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(r.Entries))
	}
	if r.Entries[0].Games < r.Entries[1].Games {
		t.Error("entries not sorted by game count descending")
	}
	if r.Entries[0].Name != "French Defense" {
		t.Errorf("top entry = %q, want French Defense", r.Entries[0].Name)
	}
}

func TestBuildReport_PromotionConservesTotals(t *testing.T) {
	london := "Queens-Pawn-Opening-London-System"
	tree := classifiedTree(t,
		[2]string{"D02", london},
		[2]string{"D02", london},
		[2]string{"D02", "Queens-Pawn-Opening-Chigorin-Variation"},
	)

	r, err := buildReport(tree, "white", defaultPromotions())
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}
	if r.Games != 3 {
		t.Errorf("Games = %d, want 3", r.Games)
	}

	var d4, londonEntry *Entry
	for _, e := range r.Entries {
		switch e.Name {
		case "London System":
			londonEntry = e
		case "Uncommon d4 Openings":
			d4 = e
		}
	}
	if londonEntry == nil {
		t.Fatal("promoted London System entry missing")
	}
	if londonEntry.Games != 2 {
		t.Errorf("London Games = %d, want 2", londonEntry.Games)
	}
	if d4 == nil {
		t.Fatal("d4 family entry missing")
	}
	if d4.Games != 1 {
		t.Errorf("d4 Games after promotion = %d, want 1", d4.Games)
	}
	for _, line := range d4.Lines {
		if line.Key == "London" {
			t.Error("promoted line still present under its family")
		}
	}
}

func TestBuildReport_UnknownPromotionFails(t *testing.T) {
	tree := classifiedTree(t, [2]string{"B12", "Caro-Kann-Defense-Exchange-Variation"})

	if _, err := buildReport(tree, "white", []Promotion{{Family: "nope", Child: "x", Name: "X"}}); err == nil {
		t.Error("buildReport() accepted a promotion with an unknown family")
	}
	if _, err := buildReport(tree, "white", []Promotion{{Family: "d4", Child: "nope", Name: "X"}}); err == nil {
		t.Error("buildReport() accepted a promotion with an unknown line")
	}
}
