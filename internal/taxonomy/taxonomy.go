// Package taxonomy models the curated opening hierarchy that games are
// classified into: ECO-code family, named line, named sub-line, and the
// exact move-order variant identified by its opening slug.
//
// The hierarchy is declared as data (see openings.go) and compiled into
// a mutable counter tree by Build. Alias code specs let many raw ECO
// codes share a single family node, so incrementing through "B12" and
// through "B10-B19" mutates the same node instance.
package taxonomy

import (
	"errors"
	"fmt"
)

// OtherKey is the reserved fallback child present under every branch.
// It is never matched by substring search; a slug that matches no other
// sibling lands here.
const OtherKey = "Other"

// ErrInvalidSpec indicates the declarative taxonomy is malformed.
var ErrInvalidSpec = errors.New("taxonomy: invalid spec")

// LineSpec declares one named line and its ordered sub-lines.
// Declaration order is significant: the classifier scans siblings in
// this order and the first substring match wins.
type LineSpec struct {
	Key  string
	Name string
	Sub  []LineSpec
}

// FamilySpec declares one opening family.
type FamilySpec struct {
	// Code is the canonical family code, e.g. "B10-B19" or "d4".
	Code string

	// Name is the human-readable family name.
	Name string

	// Aliases lists code specs (single codes, prefixed ranges, or
	// comma-separated combinations) whose expansion resolves to this
	// family's node.
	Aliases []string

	// Lines is the ordered line tree beneath the family root.
	Lines []LineSpec
}

// Participant is one side of a finished game.
type Participant struct {
	Username string  `json:"username"`
	Rating   int     `json:"rating"`
	Result   string  `json:"result"`
	WinInc   float64 `json:"win_inc"`
}

// GameRecord is an immutable snapshot of a single classified game.
type GameRecord struct {
	URL         string      `json:"url"`
	TimeClass   string      `json:"time_class"`
	TimeControl string      `json:"time_control"`
	Date        string      `json:"date"` // UTC date, "2006.01.02"
	White       Participant `json:"white"`
	Black       Participant `json:"black"`
}

// Variant accumulates games that share one exact opening slug.
type Variant struct {
	Games int
	Score float64
	ByID  map[string]GameRecord
}

// Node is one entry in the opening hierarchy. Every node, branch or
// leaf, carries its own counters; a branch's counters equal the sum of
// its children's.
type Node struct {
	Key   string
	Name  string
	Games int
	Score float64

	// Children is ordered; empty for leaves.
	Children []*Node

	// Variants holds slug buckets. Only nodes that terminate a
	// classification receive them.
	Variants map[string]*Variant
}

// Child returns the child with the given key, or nil.
func (n *Node) Child(key string) *Node {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Other returns the fallback child. Build guarantees it exists on
// every branch.
func (n *Node) Other() *Node {
	return n.Child(OtherKey)
}

// Bucket returns the variant bucket for slug, creating it on first
// sight.
func (n *Node) Bucket(slug string) *Variant {
	if n.Variants == nil {
		n.Variants = make(map[string]*Variant)
	}
	v, ok := n.Variants[slug]
	if !ok {
		v = &Variant{ByID: make(map[string]GameRecord)}
		n.Variants[slug] = v
	}
	return v
}

// Tree is the root of one color's counter tree: the ordered family
// nodes plus a code index resolving canonical and alias codes to the
// shared node instances.
type Tree struct {
	Families []*Node

	index map[string]*Node
}

// Resolve maps a raw classification code to its family node. The
// second return is false for codes with no canonical or alias entry.
func (t *Tree) Resolve(code string) (*Node, bool) {
	n, ok := t.index[code]
	return n, ok
}

// Codes returns the number of distinct codes in the index. Exposed for
// tests and diagnostics.
func (t *Tree) Codes() int {
	return len(t.index)
}

// Build compiles a declarative family list into a fresh counter tree.
// It fails fast on structural errors: a branch without an "Other"
// child, an "Other" child with sub-lines of its own, a malformed alias
// spec, or two families claiming the same code.
func Build(specs []FamilySpec) (*Tree, error) {
	t := &Tree{
		index: make(map[string]*Node),
	}

	for _, fs := range specs {
		root := &Node{Key: fs.Code, Name: fs.Name}
		for _, ls := range fs.Lines {
			child, err := buildLine(fs.Code, ls)
			if err != nil {
				return nil, err
			}
			root.Children = append(root.Children, child)
		}
		if err := validateBranch(fs.Code, root); err != nil {
			return nil, err
		}

		if _, dup := t.index[fs.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate family code %q", ErrInvalidSpec, fs.Code)
		}
		t.Families = append(t.Families, root)
		t.index[fs.Code] = root

		for _, spec := range fs.Aliases {
			codes, err := ParseCodeSpec(spec)
			if err != nil {
				return nil, fmt.Errorf("family %q: %w", fs.Code, err)
			}
			for _, code := range codes {
				if existing, ok := t.index[code]; ok && existing != root {
					return nil, fmt.Errorf("%w: code %q aliased to both %q and %q",
						ErrInvalidSpec, code, existing.Key, fs.Code)
				}
				t.index[code] = root
			}
		}
	}

	return t, nil
}

// New builds a counter tree from the built-in opening data. Callers
// needing independent trees (one per tracked color) call New once per
// tree rather than copying.
func New() (*Tree, error) {
	return Build(Openings)
}

func buildLine(path string, ls LineSpec) (*Node, error) {
	n := &Node{Key: ls.Key, Name: ls.Name}
	if ls.Key == OtherKey && len(ls.Sub) > 0 {
		return nil, fmt.Errorf("%w: %s: %q must not declare sub-lines", ErrInvalidSpec, path, OtherKey)
	}
	for _, sub := range ls.Sub {
		child, err := buildLine(path+"/"+ls.Key, sub)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	if len(n.Children) > 0 {
		if err := validateBranch(path+"/"+ls.Key, n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// validateBranch checks the invariant the classifier depends on: every
// branch carries an "Other" fallback.
func validateBranch(path string, n *Node) error {
	if n.Other() == nil {
		return fmt.Errorf("%w: %s: branch lacks %q child", ErrInvalidSpec, path, OtherKey)
	}
	seen := make(map[string]bool, len(n.Children))
	for _, c := range n.Children {
		if seen[c.Key] {
			return fmt.Errorf("%w: %s: duplicate child key %q", ErrInvalidSpec, path, c.Key)
		}
		seen[c.Key] = true
	}
	return nil
}
