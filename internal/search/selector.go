package search

import (
	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/kofiantwi/airroutes/internal/geo"
)

// CoordinateSource resolves an airport code to its coordinate. The second
// return is false when the airport has no geolocation.
type CoordinateSource interface {
	CoordinateOf(code domain.AirportCode) (domain.Coordinate, bool)
}

// Selector picks the candidate with the smallest total great-circle distance
// out of an equal-hop tie class.
type Selector struct {
	coords CoordinateSource
}

func NewSelector(coords CoordinateSource) *Selector {
	return &Selector{coords: coords}
}

// Pick returns the candidate with minimum total distance and that distance in
// kilometers. Candidates missing any coordinate are skipped; if that empties
// the set, Pick fails with domain.ErrNoOptimalRoute. Exact distance ties keep
// the first candidate seen.
func (s *Selector) Pick(candidates []domain.Path) (domain.Path, float64, error) {
	var (
		best     domain.Path
		bestDist float64
	)
	for _, path := range candidates {
		dist, err := s.distance(path)
		if err != nil {
			continue
		}
		if best == nil || dist < bestDist {
			best = path
			bestDist = dist
		}
	}
	if best == nil {
		return nil, 0, domain.ErrNoOptimalRoute
	}
	return best, bestDist, nil
}

func (s *Selector) distance(path domain.Path) (float64, error) {
	coords := make([]domain.Coordinate, 0, len(path))
	for _, code := range path {
		coord, ok := s.coords.CoordinateOf(code)
		if !ok {
			return 0, domain.ErrNoCoordinate
		}
		coords = append(coords, coord)
	}
	return geo.PathDistance(coords), nil
}
