package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/discochess/repertoire/internal/archive"
	"github.com/discochess/repertoire/internal/classify"
	"github.com/discochess/repertoire/internal/taxonomy"
)

type fakeSource struct {
	archives []string
	months   map[string][]archive.Game
	fail     map[string]error

	mu      sync.Mutex
	fetched []string
}

func (s *fakeSource) Archives(ctx context.Context, username string) ([]string, error) {
	return s.archives, nil
}

func (s *fakeSource) Month(ctx context.Context, monthURL string) ([]archive.Game, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, monthURL)
	s.mu.Unlock()
	if err := s.fail[monthURL]; err != nil {
		return nil, err
	}
	return s.months[monthURL], nil
}

func testPGN(eco, slug, date string) string {
	return fmt.Sprintf("[Event \"Live Chess\"]\n[ECO %q]\n[ECOUrl \"https://www.chess.com/openings/%s\"]\n[UTCDate %q]\n\n1. e4 c6 1-0", eco, slug, date)
}

func game(id, white, whiteResult, black, blackResult, pgn string) archive.Game {
	return archive.Game{
		URL:       "https://www.chess.com/game/live/" + id,
		PGN:       pgn,
		Rules:     "chess",
		TimeClass: "blitz",
		White:     archive.Player{Username: white, Rating: 1500, Result: whiteResult},
		Black:     archive.Player{Username: black, Rating: 1490, Result: blackResult},
	}
}

func newPipeline(t *testing.T, src archive.Source, opts ...Option) (*Pipeline, *taxonomy.Tree, *taxonomy.Tree) {
	t.Helper()
	white, err := taxonomy.New()
	if err != nil {
		t.Fatalf("taxonomy.New() error = %v", err)
	}
	black, err := taxonomy.New()
	if err != nil {
		t.Fatalf("taxonomy.New() error = %v", err)
	}
	return New(src, classify.New(white), classify.New(black), opts...), white, black
}

func TestPipeline_RoutesByColor(t *testing.T) {
	caro := testPGN("B12", "Caro-Kann-Defense-Advance-Variation-Tal-Variation", "2026.07.01")
	src := &fakeSource{
		archives: []string{"m1"},
		months: map[string][]archive.Game{
			"m1": {
				game("1", "TestPlayer", "win", "opponent", "resigned", caro),
				game("2", "opponent", "timeout", "testplayer", "win", caro),
			},
		},
	}
	p, white, black := newPipeline(t, src)

	res, err := p.Run(context.Background(), "testplayer", 0, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.GamesClassified != 2 {
		t.Fatalf("GamesClassified = %d, want 2", res.GamesClassified)
	}

	// Game 1: tracked player held white (case-insensitive match) and won.
	wNode, _ := white.Resolve("B12")
	if wNode.Games != 1 || wNode.Score != 1 {
		t.Errorf("white family = %d games score %v, want 1 game score 1", wNode.Games, wNode.Score)
	}
	// Game 2: tracked player held black and won.
	bNode, _ := black.Resolve("B12")
	if bNode.Games != 1 || bNode.Score != 1 {
		t.Errorf("black family = %d games score %v, want 1 game score 1", bNode.Games, bNode.Score)
	}
}

func TestPipeline_DrawScoresHalf(t *testing.T) {
	pgn := testPGN("B12", "Caro-Kann-Defense-Exchange-Variation", "2026.07.01")
	src := &fakeSource{
		archives: []string{"m1"},
		months: map[string][]archive.Game{
			"m1": {game("1", "testplayer", "agreed", "opponent", "agreed", pgn)},
		},
	}
	p, white, _ := newPipeline(t, src)

	if _, err := p.Run(context.Background(), "testplayer", 0, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	n, _ := white.Resolve("B12")
	if n.Score != 0.5 {
		t.Errorf("family Score = %v, want 0.5", n.Score)
	}

	// Both participants carry their own half point in the record.
	v := n.Child("Exchange").Variants["Caro-Kann-Defense-Exchange-Variation"]
	if v == nil {
		t.Fatal("variant bucket missing")
	}
	rec := v.ByID["1"]
	if rec.White.WinInc != 0.5 || rec.Black.WinInc != 0.5 {
		t.Errorf("WinInc = %v/%v, want 0.5/0.5", rec.White.WinInc, rec.Black.WinInc)
	}
}

func TestPipeline_LossScoresZero(t *testing.T) {
	pgn := testPGN("B12", "Caro-Kann-Defense-Exchange-Variation", "2026.07.01")
	src := &fakeSource{
		archives: []string{"m1"},
		months: map[string][]archive.Game{
			"m1": {game("1", "testplayer", "checkmated", "opponent", "win", pgn)},
		},
	}
	p, white, _ := newPipeline(t, src)

	if _, err := p.Run(context.Background(), "testplayer", 0, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	n, _ := white.Resolve("B12")
	if n.Games != 1 || n.Score != 0 {
		t.Errorf("family = %d games score %v, want 1 game score 0", n.Games, n.Score)
	}
}

func TestPipeline_SkipsVariantsAndFilteredClasses(t *testing.T) {
	pgn := testPGN("B12", "Caro-Kann-Defense-Exchange-Variation", "2026.07.01")
	variant := game("1", "testplayer", "win", "opponent", "resigned", pgn)
	variant.Rules = "chess960"
	bullet := game("2", "testplayer", "win", "opponent", "resigned", pgn)
	bullet.TimeClass = "bullet"
	keeper := game("3", "testplayer", "win", "opponent", "resigned", pgn)

	src := &fakeSource{
		archives: []string{"m1"},
		months:   map[string][]archive.Game{"m1": {variant, bullet, keeper}},
	}
	p, white, _ := newPipeline(t, src)

	res, err := p.Run(context.Background(), "testplayer", 0, []string{"blitz", "rapid"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.GamesClassified != 1 {
		t.Errorf("GamesClassified = %d, want 1", res.GamesClassified)
	}
	n, _ := white.Resolve("B12")
	if n.Games != 1 {
		t.Errorf("family Games = %d, want 1", n.Games)
	}
}

func TestPipeline_SkipsUnparseableGames(t *testing.T) {
	noTags := game("1", "testplayer", "win", "opponent", "resigned",
		"[Event \"Live Chess\"]\n\n1. e4 e5 1-0")
	src := &fakeSource{
		archives: []string{"m1"},
		months:   map[string][]archive.Game{"m1": {noTags}},
	}
	p, _, _ := newPipeline(t, src)

	res, err := p.Run(context.Background(), "testplayer", 0, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.GamesClassified != 0 || res.GamesSkipped != 1 {
		t.Errorf("classified/skipped = %d/%d, want 0/1", res.GamesClassified, res.GamesSkipped)
	}
}

func TestPipeline_CountsUnknownFamilies(t *testing.T) {
	pgn := testPGN("Z99", "Nonexistent-Opening", "2026.07.01")
	src := &fakeSource{
		archives: []string{"m1"},
		months:   map[string][]archive.Game{"m1": {game("1", "testplayer", "win", "opponent", "resigned", pgn)}},
	}
	p, _, _ := newPipeline(t, src)

	res, err := p.Run(context.Background(), "testplayer", 0, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.UnknownFamilies != 1 || res.GamesClassified != 0 {
		t.Errorf("unknown/classified = %d/%d, want 1/0", res.UnknownFamilies, res.GamesClassified)
	}
}

func TestPipeline_BatchErrorIsolation(t *testing.T) {
	pgn := testPGN("B12", "Caro-Kann-Defense-Exchange-Variation", "2026.07.01")
	src := &fakeSource{
		archives: []string{"m1", "m2"},
		months:   map[string][]archive.Game{"m2": {game("1", "testplayer", "win", "opponent", "resigned", pgn)}},
		fail:     map[string]error{"m1": errors.New("upstream down")},
	}
	p, white, _ := newPipeline(t, src)

	res, err := p.Run(context.Background(), "testplayer", 0, nil)
	if err != nil {
		t.Fatalf("Run() error = %v, batch failures must not abort the run", err)
	}
	if len(res.BatchErrors) != 1 {
		t.Fatalf("BatchErrors = %d, want 1", len(res.BatchErrors))
	}
	if res.BatchErrors[0].MonthURL != "m1" {
		t.Errorf("failed batch = %q, want m1", res.BatchErrors[0].MonthURL)
	}
	if res.BatchesFetched != 1 {
		t.Errorf("BatchesFetched = %d, want 1", res.BatchesFetched)
	}
	n, _ := white.Resolve("B12")
	if n.Games != 1 {
		t.Errorf("surviving batch not ingested, family Games = %d", n.Games)
	}
}

func TestPipeline_TrailingMonthsWindow(t *testing.T) {
	src := &fakeSource{
		archives: []string{"m1", "m2", "m3", "m4"},
		months:   map[string][]archive.Game{},
	}
	p, _, _ := newPipeline(t, src)

	if _, err := p.Run(context.Background(), "testplayer", 2, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	src.mu.Lock()
	defer src.mu.Unlock()
	if len(src.fetched) != 2 {
		t.Fatalf("fetched %d batches, want 2", len(src.fetched))
	}
	got := map[string]bool{src.fetched[0]: true, src.fetched[1]: true}
	if !got["m3"] || !got["m4"] {
		t.Errorf("fetched %v, want the trailing months m3 and m4", src.fetched)
	}
}

func TestPipeline_ProgressReported(t *testing.T) {
	pgn := testPGN("B12", "Caro-Kann-Defense-Exchange-Variation", "2026.07.01")
	src := &fakeSource{
		archives: []string{"m1"},
		months: map[string][]archive.Game{
			"m1": {
				game("1", "testplayer", "win", "opponent", "resigned", pgn),
				game("2", "testplayer", "win", "opponent", "resigned", pgn),
			},
		},
	}

	var mu sync.Mutex
	var last Progress
	p, _, _ := newPipeline(t, src, WithProgress(func(pr Progress) {
		mu.Lock()
		last = pr
		mu.Unlock()
	}))

	if _, err := p.Run(context.Background(), "testplayer", 0, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if last.GamesProcessed != 2 {
		t.Errorf("final GamesProcessed = %d, want 2", last.GamesProcessed)
	}
	if last.BatchesTotal != 1 || last.BatchesFetched != 1 {
		t.Errorf("batches = %d/%d, want 1/1", last.BatchesFetched, last.BatchesTotal)
	}
}
