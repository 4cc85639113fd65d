// Package detail resolves a plausible carrier label and stop count for each
// flight segment of a chosen route.
package detail

import (
	"math/rand"
	"time"

	"github.com/kofiantwi/airroutes/internal/domain"
)

// EdgeSource enumerates the route edges between an adjacent airport pair.
type EdgeSource interface {
	EdgesBetween(from, to domain.AirportCode) []domain.RouteEdge
}

// AirlineSource resolves an airline id to its IATA and ICAO codes. The last
// return is false for unknown or inactive airlines.
type AirlineSource interface {
	ActiveLabel(airlineID int) (iata, icao string, ok bool)
}

type Resolver struct {
	edges    EdgeSource
	airlines AirlineSource
	rng      *rand.Rand
}

// NewResolver builds a resolver choosing among carriers with rng. A nil rng
// falls back to a time-seeded source; tests pass a fixed seed.
func NewResolver(edges EdgeSource, airlines AirlineSource, rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{edges: edges, airlines: airlines, rng: rng}
}

type candidate struct {
	label string
	stops int
}

// Resolve picks one carrier label and stop count for the segment from -> to,
// uniformly among the edges whose airline is active and carries a usable
// label. The IATA code is preferred, the ICAO code is the fallback; edges
// where both are null sentinels never become candidates, so the choice is a
// single draw rather than a retry loop. Fails with domain.ErrNoAirlineLabel
// when no edge yields a label.
func (r *Resolver) Resolve(from, to domain.AirportCode) (domain.Segment, error) {
	var candidates []candidate
	for _, edge := range r.edges.EdgesBetween(from, to) {
		iata, icao, ok := r.airlines.ActiveLabel(edge.AirlineID)
		if !ok {
			continue
		}
		label := iata
		if !usableLabel(label) {
			label = icao
		}
		if !usableLabel(label) {
			continue
		}
		candidates = append(candidates, candidate{label: label, stops: edge.Stops})
	}
	if len(candidates) == 0 {
		return domain.Segment{}, domain.ErrNoAirlineLabel
	}

	picked := candidates[r.rng.Intn(len(candidates))]
	return domain.Segment{
		From:    from,
		To:      to,
		Airline: picked.label,
		Stops:   picked.stops,
	}, nil
}

func usableLabel(s string) bool {
	return s != "" && s != domain.NullSentinel
}
