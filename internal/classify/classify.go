// Package classify buckets individual games into a taxonomy counter
// tree. It is the only writer of tree counters and serializes all
// mutation per opening family, so one Classifier may be shared by any
// number of goroutines.
package classify

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/discochess/repertoire/internal/taxonomy"
)

// ErrUnknownFamily indicates a classification code with neither a
// canonical nor an alias entry in the tree. It signals a taxonomy gap
// and is surfaced distinctly from an ordinary skipped game.
var ErrUnknownFamily = errors.New("classify: unknown family code")

// Classifier classifies games into a single color's tree.
type Classifier struct {
	tree *taxonomy.Tree

	// One lock per family root. Aliased codes resolve to the same
	// root and therefore contend on the same lock, which is what
	// keeps shared-node increments serialized. Unrelated families
	// never contend.
	locks map[*taxonomy.Node]*sync.Mutex
}

// New creates a Classifier over tree.
func New(tree *taxonomy.Tree) *Classifier {
	locks := make(map[*taxonomy.Node]*sync.Mutex, len(tree.Families))
	for _, root := range tree.Families {
		locks[root] = &sync.Mutex{}
	}
	return &Classifier{tree: tree, locks: locks}
}

// Tree returns the underlying counter tree.
func (c *Classifier) Tree() *taxonomy.Tree {
	return c.tree
}

// Classify buckets one game. The code is the raw ECO classification
// code, slug the exact opening slug from the classification URL, and
// winInc the tracked player's score for the game (1, 0.5, or 0).
//
// The walk is greedy depth-first: at each level the first declared
// non-"Other" child whose key is a substring of slug wins. A matching
// branch recurses; a matching leaf terminates and receives the variant
// bucket; no match falls through to the level's "Other" child.
func (c *Classifier) Classify(code, slug, gameID string, rec taxonomy.GameRecord, winInc float64) error {
	root, ok := c.tree.Resolve(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, code)
	}

	mu := c.locks[root]
	mu.Lock()
	defer mu.Unlock()

	descend(root, slug, gameID, rec, winInc)
	return nil
}

func descend(n *taxonomy.Node, slug, gameID string, rec taxonomy.GameRecord, winInc float64) {
	n.Games++
	n.Score += winInc

	for _, child := range n.Children {
		if child.Key == taxonomy.OtherKey {
			// Reserved structural fallback, never substring-matched.
			continue
		}
		if !strings.Contains(slug, child.Key) {
			continue
		}
		if len(child.Children) > 0 {
			descend(child, slug, gameID, rec, winInc)
			return
		}
		child.Games++
		child.Score += winInc
		record(child, slug, gameID, rec, winInc)
		return
	}

	fallback := n.Other()
	fallback.Games++
	fallback.Score += winInc
	record(fallback, slug, gameID, rec, winInc)
}

func record(n *taxonomy.Node, slug, gameID string, rec taxonomy.GameRecord, winInc float64) {
	v := n.Bucket(slug)
	v.Games++
	v.Score += winInc
	v.ByID[gameID] = rec
}
