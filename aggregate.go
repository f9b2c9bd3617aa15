package repertoire

import (
	"fmt"
	"sort"

	"github.com/discochess/repertoire/internal/taxonomy"
)

// Promotion lifts one line out of its family into a top-level entry
// during report building. The family's counters shrink by the promoted
// line's share so totals stay conserved.
type Promotion struct {
	// Family is the canonical code of the family holding the line.
	Family string

	// Child is the key of the line to promote.
	Child string

	// Name is the display name the promoted entry takes.
	Name string
}

// defaultPromotions surfaces openings popular enough to deserve
// top-level billing. The London System dwarfs every other d4 line at
// club level.
func defaultPromotions() []Promotion {
	return []Promotion{
		{Family: "d4", Child: "London", Name: "London System"},
	}
}

// buildReport turns a finished counter tree into a presentable report:
// promotions applied, empty and duplicate-named families dropped, every
// level ordered by game count. The tree is consumed; promotions detach
// nodes from it.
func buildReport(t *taxonomy.Tree, color string, promotions []Promotion) (*Report, error) {
	total := 0
	for _, f := range t.Families {
		total += f.Games
	}

	roots := make([]*taxonomy.Node, len(t.Families))
	copy(roots, t.Families)

	for _, p := range promotions {
		promoted, err := promote(t, p)
		if err != nil {
			return nil, err
		}
		roots = append(roots, promoted)
	}

	r := &Report{Color: color, Games: total}
	seen := make(map[string]bool, len(roots))
	for _, n := range roots {
		if n.Games == 0 || seen[n.Name] {
			continue
		}
		seen[n.Name] = true
		r.Entries = append(r.Entries, buildEntry(n))
	}
	sort.SliceStable(r.Entries, func(i, j int) bool {
		return r.Entries[i].Games > r.Entries[j].Games
	})
	return r, nil
}

// promote detaches the configured line from its family, subtracting its
// counters from the family root. The detached node comes back renamed,
// ready to stand as a top-level entry.
func promote(t *taxonomy.Tree, p Promotion) (*taxonomy.Node, error) {
	family, ok := t.Resolve(p.Family)
	if !ok {
		return nil, fmt.Errorf("promotion: unknown family code %q", p.Family)
	}
	child := family.Child(p.Child)
	if child == nil {
		return nil, fmt.Errorf("promotion: family %q has no line %q", p.Family, p.Child)
	}

	for i, c := range family.Children {
		if c == child {
			family.Children = append(family.Children[:i], family.Children[i+1:]...)
			break
		}
	}
	family.Games -= child.Games
	family.Score -= child.Score

	return &taxonomy.Node{
		Key:      child.Key,
		Name:     p.Name,
		Games:    child.Games,
		Score:    child.Score,
		Children: child.Children,
		Variants: child.Variants,
	}, nil
}

func buildEntry(n *taxonomy.Node) *Entry {
	e := &Entry{
		Key:     n.Key,
		Name:    n.Name,
		Games:   n.Games,
		Score:   n.Score,
		WinRate: winRate(n.Score, n.Games),
	}

	for slug, v := range n.Variants {
		e.Variants = append(e.Variants, buildVariant(slug, v))
	}
	sort.Slice(e.Variants, func(i, j int) bool {
		if e.Variants[i].Games != e.Variants[j].Games {
			return e.Variants[i].Games > e.Variants[j].Games
		}
		return e.Variants[i].Slug < e.Variants[j].Slug
	})

	for _, c := range n.Children {
		if c.Games == 0 {
			continue
		}
		e.Lines = append(e.Lines, buildEntry(c))
	}
	sort.SliceStable(e.Lines, func(i, j int) bool {
		return e.Lines[i].Games > e.Lines[j].Games
	})
	return e
}

func buildVariant(slug string, v *taxonomy.Variant) Variant {
	out := Variant{
		Slug:    slug,
		Games:   v.Games,
		Score:   v.Score,
		WinRate: winRate(v.Score, v.Games),
		History: make([]Game, 0, len(v.ByID)),
	}
	for id, rec := range v.ByID {
		out.History = append(out.History, Game{
			ID:          id,
			URL:         rec.URL,
			TimeClass:   rec.TimeClass,
			TimeControl: rec.TimeControl,
			Date:        rec.Date,
			White:       player(rec.White),
			Black:       player(rec.Black),
		})
	}
	// Dates are zero-padded yyyy.mm.dd, so byte order is date order.
	sort.Slice(out.History, func(i, j int) bool {
		if out.History[i].Date != out.History[j].Date {
			return out.History[i].Date > out.History[j].Date
		}
		return out.History[i].ID < out.History[j].ID
	})
	return out
}

func player(p taxonomy.Participant) Player {
	return Player{
		Username: p.Username,
		Rating:   p.Rating,
		Result:   p.Result,
		WinInc:   p.WinInc,
	}
}
