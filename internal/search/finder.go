// Package search finds minimum-hop paths between two airports by expanding a
// forward frontier from the start and a backward frontier from the
// destination until they meet.
package search

import "github.com/kofiantwi/airroutes/internal/domain"

// DefaultMaxDepth bounds each frontier to six levels, so the deepest
// reachable route is twelve hops. The bound is explicit: a search that
// reaches it without a meeting point fails with domain.ErrNoRoute.
const DefaultMaxDepth = 6

// Graph provides direction-dependent neighbor queries over the route graph.
// Neighbor sets must be free of duplicates; parallel edges between the same
// pair matter only for detail resolution, not for path topology.
type Graph interface {
	ForwardNeighbors(code domain.AirportCode) []domain.AirportCode
	BackwardNeighbors(code domain.AirportCode) []domain.AirportCode
}

// state drives the search control flow. Each round either checks the current
// leaves for a meeting point or expands the shallower frontier one level.
type state int

const (
	stateCheckMeeting state = iota
	stateExpandForward
	stateExpandBackward
	stateFound
	stateExhausted
)

type Finder struct {
	graph    Graph
	maxDepth int
}

// NewFinder builds a path finder over graph. maxDepth bounds each frontier's
// depth; values <= 0 fall back to DefaultMaxDepth.
func NewFinder(graph Graph, maxDepth int) *Finder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Finder{graph: graph, maxDepth: maxDepth}
}

// Find returns every minimum-hop path from start to dest. All returned paths
// share the same length and none revisits an airport. A start equal to the
// destination yields the zero-hop identity path. When dest is a direct
// forward neighbor of start the single-hop path is returned without any
// frontier expansion. Fails with domain.ErrNoRoute once either frontier
// would exceed the depth bound, or runs out of neighbors, without a match.
func (f *Finder) Find(start, dest domain.AirportCode) ([]domain.Path, error) {
	if start == dest {
		return []domain.Path{{start}}, nil
	}
	for _, n := range f.graph.ForwardNeighbors(start) {
		if n == dest {
			return []domain.Path{{start, dest}}, nil
		}
	}

	fwd := newFrontier(start)
	bwd := newFrontier(dest)

	var matches []domain.Path
	st := stateCheckMeeting
	for {
		switch st {
		case stateCheckMeeting:
			matches = meet(fwd, bwd)
			switch {
			case len(matches) > 0:
				st = stateFound
			case fwd.depth < bwd.depth:
				st = stateExpandForward
			default:
				// equal depths break toward the backward frontier
				st = stateExpandBackward
			}
		case stateExpandForward:
			if fwd.depth >= f.maxDepth || !fwd.expand(f.graph.ForwardNeighbors) {
				st = stateExhausted
			} else {
				st = stateCheckMeeting
			}
		case stateExpandBackward:
			if bwd.depth >= f.maxDepth || !bwd.expand(f.graph.BackwardNeighbors) {
				st = stateExhausted
			} else {
				st = stateCheckMeeting
			}
		case stateFound:
			return matches, nil
		case stateExhausted:
			return nil, domain.ErrNoRoute
		}
	}
}

// meet collects every complete path produced by the current leaves. A leaf
// position already encodes its (code, parent) pair, so matching leaf codes
// across the frontiers preserves every distinct path through a recurring
// code. Matches found in the same round form the whole minimum-hop tie class.
func meet(fwd, bwd *frontier) []domain.Path {
	byCode := make(map[domain.AirportCode][]int, len(bwd.leaves))
	for _, leaf := range bwd.leaves {
		code := bwd.entries[leaf].code
		byCode[code] = append(byCode[code], leaf)
	}

	var matches []domain.Path
	seen := make(map[string]bool)
	for _, leaf := range fwd.leaves {
		for _, back := range byCode[fwd.entries[leaf].code] {
			path := joinAt(fwd, leaf, bwd, back)
			if path == nil {
				continue
			}
			key := pathKey(path)
			if !seen[key] {
				seen[key] = true
				matches = append(matches, path)
			}
		}
	}
	return matches
}

// joinAt splices the forward root-to-leaf path with the backward leaf's
// parent chain, which already runs meeting point to destination. Candidates
// that revisit an airport are discarded.
func joinAt(fwd *frontier, fi int, bwd *frontier, bi int) domain.Path {
	path := fwd.pathTo(fi)
	for at := bwd.entries[bi].parent; at >= 0; at = bwd.entries[at].parent {
		path = append(path, bwd.entries[at].code)
	}

	visited := make(map[domain.AirportCode]bool, len(path))
	for _, code := range path {
		if visited[code] {
			return nil
		}
		visited[code] = true
	}
	return path
}

func pathKey(path domain.Path) string {
	key := ""
	for _, code := range path {
		key += string(code) + "|"
	}
	return key
}
