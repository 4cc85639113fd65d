package search

import "github.com/kofiantwi/airroutes/internal/domain"

// entry is one node of a frontier tree, stored in a flat arena. parent is an
// index into the arena, -1 for the root. depth equals the hop distance from
// the root along the expansion direction.
type entry struct {
	code   domain.AirportCode
	parent int
	depth  int
}

// frontier is a layered search tree rooted at one query endpoint. The same
// airport code may occur at several positions; each position stands for a
// distinct path back to the root.
type frontier struct {
	entries []entry
	leaves  []int
	depth   int
}

func newFrontier(root domain.AirportCode) *frontier {
	return &frontier{
		entries: []entry{{code: root, parent: -1, depth: 0}},
		leaves:  []int{0},
	}
}

// expand attaches the neighbors of every current leaf as children, advancing
// the frontier one level. The neighbor function is direction-dependent:
// forward neighbors for the start frontier, backward for the destination one.
// It returns false when no leaf produced any child.
func (f *frontier) expand(neighbors func(domain.AirportCode) []domain.AirportCode) bool {
	next := make([]int, 0, len(f.leaves))
	for _, leaf := range f.leaves {
		for _, code := range neighbors(f.entries[leaf].code) {
			f.entries = append(f.entries, entry{code: code, parent: leaf, depth: f.depth + 1})
			next = append(next, len(f.entries)-1)
		}
	}
	if len(next) == 0 {
		return false
	}
	f.leaves = next
	f.depth++
	return true
}

// pathTo reconstructs the root-to-entry path by walking parent indices.
func (f *frontier) pathTo(i int) domain.Path {
	var reversed domain.Path
	for at := i; at >= 0; at = f.entries[at].parent {
		reversed = append(reversed, f.entries[at].code)
	}
	path := make(domain.Path, 0, len(reversed))
	for j := len(reversed) - 1; j >= 0; j-- {
		path = append(path, reversed[j])
	}
	return path
}
