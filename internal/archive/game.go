package archive

import (
	"path"
	"strings"
	"time"

	"github.com/notnil/chess"
)

// openingURLPrefix is stripped from the ECOUrl header to obtain the
// opening slug.
const openingURLPrefix = "https://www.chess.com/openings/"

// utcDateLayout is the UTCDate PGN tag format.
const utcDateLayout = "2006.01.02"

// Player is one side of a raw archived game.
type Player struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Result   string `json:"result"`
}

// Game is a raw finished game as returned by a month batch.
type Game struct {
	URL         string `json:"url"`
	PGN         string `json:"pgn"`
	Rules       string `json:"rules"`
	TimeClass   string `json:"time_class"`
	TimeControl string `json:"time_control"`
	White       Player `json:"white"`
	Black       Player `json:"black"`
}

// ID returns the game identifier: the trailing path segment of the
// game URL.
func (g *Game) ID() string {
	return path.Base(g.URL)
}

// Opening is the classification metadata embedded in a game's PGN.
type Opening struct {
	Code string // raw ECO code, e.g. "B12"
	Slug string // exact opening slug, e.g. "caro-kann-defense-advance-tal-variation"
	Date string // UTC date, "2006.01.02"
}

// Opening extracts the classification metadata from the embedded PGN.
// The second return is false when the game cannot be classified: a
// missing ECO code or classification URL, an unparseable date, or a
// PGN the parser rejects. Such games are expected and skipped by the
// caller.
func (g *Game) Opening() (Opening, bool) {
	update, err := chess.PGN(strings.NewReader(g.PGN))
	if err != nil {
		return Opening{}, false
	}
	parsed := chess.NewGame(update)

	eco := tagValue(parsed, "ECO")
	ecoURL := tagValue(parsed, "ECOUrl")
	date := tagValue(parsed, "UTCDate")
	if eco == "" || ecoURL == "" {
		return Opening{}, false
	}
	if _, err := time.Parse(utcDateLayout, date); err != nil {
		return Opening{}, false
	}

	return Opening{Code: eco, Slug: openingSlug(ecoURL), Date: date}, true
}

func tagValue(g *chess.Game, key string) string {
	if tp := g.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return ""
}

// openingSlug strips the chess.com openings prefix from a
// classification URL, falling back to the trailing path segment for
// unrecognized hosts.
func openingSlug(ecoURL string) string {
	if rest, ok := strings.CutPrefix(ecoURL, openingURLPrefix); ok {
		return rest
	}
	return path.Base(ecoURL)
}

// Profile is a player's public profile.
type Profile struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Country  string `json:"country"`
}

// DisplayName returns the canonically cased username: the trailing
// segment of the profile URL.
func (p *Profile) DisplayName() string {
	if p.URL != "" {
		return path.Base(p.URL)
	}
	return p.Username
}

// Rating is a current/peak rating pair for one time class.
type Rating struct {
	Current int `json:"current"`
	Peak    int `json:"peak"`
}

// RatingSnapshot is one rating figure inside a stats entry.
type RatingSnapshot struct {
	Rating int `json:"rating"`
}

// StatsEntry is one game mode's block in the stats document.
type StatsEntry struct {
	Last RatingSnapshot `json:"last"`
	Best RatingSnapshot `json:"best"`
}

// Stats is the raw per-mode stats document, keyed by entries such as
// "chess_blitz".
type Stats map[string]StatsEntry

// Ratings extracts current/peak ratings for the given time classes.
// Time classes the player has never played are omitted.
func (s Stats) Ratings(timeClasses []string) map[string]Rating {
	out := make(map[string]Rating, len(timeClasses))
	for _, tc := range timeClasses {
		entry, ok := s["chess_"+tc]
		if !ok {
			continue
		}
		out[tc] = Rating{Current: entry.Last.Rating, Peak: entry.Best.Rating}
	}
	return out
}
