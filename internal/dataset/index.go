package dataset

import (
	"fmt"
	"sort"

	"github.com/kofiantwi/airroutes/internal/domain"
)

type placeKey struct {
	city    string
	country string
}

type pairKey struct {
	from domain.AirportCode
	to   domain.AirportCode
}

// Index holds the airport, airline and route data pre-indexed for the
// search core. It is built once per process and read-only afterwards, so
// lookups need no locking.
type Index struct {
	codes    map[placeKey][]domain.AirportCode
	coords   map[domain.AirportCode]domain.Coordinate
	forward  map[domain.AirportCode][]domain.AirportCode
	backward map[domain.AirportCode][]domain.AirportCode
	edges    map[pairKey][]domain.RouteEdge
	airlines map[int]domain.Airline
}

func NewIndex(airports []domain.Airport, airlines []domain.Airline, routes []domain.RouteEdge) *Index {
	idx := &Index{
		codes:    make(map[placeKey][]domain.AirportCode),
		coords:   make(map[domain.AirportCode]domain.Coordinate),
		forward:  make(map[domain.AirportCode][]domain.AirportCode),
		backward: make(map[domain.AirportCode][]domain.AirportCode),
		edges:    make(map[pairKey][]domain.RouteEdge),
		airlines: make(map[int]domain.Airline, len(airlines)),
	}

	for _, a := range airports {
		key := placeKey{city: a.City, country: a.Country}
		idx.codes[key] = append(idx.codes[key], a.Code)
		if a.Code.Valid() && a.HasCoord {
			idx.coords[a.Code] = a.Coord
		}
	}
	for _, a := range airlines {
		idx.airlines[a.ID] = a
	}

	fwdSeen := make(map[pairKey]bool)
	for _, r := range routes {
		pair := pairKey{from: r.From, to: r.To}
		idx.edges[pair] = append(idx.edges[pair], r)
		if !fwdSeen[pair] {
			fwdSeen[pair] = true
			idx.forward[r.From] = append(idx.forward[r.From], r.To)
			idx.backward[r.To] = append(idx.backward[r.To], r.From)
		}
	}
	// deterministic neighbor order
	for _, neighbors := range idx.forward {
		sortCodes(neighbors)
	}
	for _, neighbors := range idx.backward {
		sortCodes(neighbors)
	}
	return idx
}

func sortCodes(codes []domain.AirportCode) {
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
}

// CodeFor resolves a city/country pair to its airport code, skipping null
// sentinel codes. Fails with domain.ErrUnsupportedLocation when the place is
// unknown or has no usable code.
func (idx *Index) CodeFor(city, country string) (domain.AirportCode, error) {
	for _, code := range idx.codes[placeKey{city: city, country: country}] {
		if code.Valid() {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %s, %s", domain.ErrUnsupportedLocation, city, country)
}

func (idx *Index) CoordinateOf(code domain.AirportCode) (domain.Coordinate, bool) {
	coord, ok := idx.coords[code]
	return coord, ok
}

func (idx *Index) ForwardNeighbors(code domain.AirportCode) []domain.AirportCode {
	return idx.forward[code]
}

func (idx *Index) BackwardNeighbors(code domain.AirportCode) []domain.AirportCode {
	return idx.backward[code]
}

func (idx *Index) EdgesBetween(from, to domain.AirportCode) []domain.RouteEdge {
	return idx.edges[pairKey{from: from, to: to}]
}

// ActiveLabel returns the IATA and ICAO codes of an airline, or ok=false for
// unknown or inactive ids.
func (idx *Index) ActiveLabel(airlineID int) (iata, icao string, ok bool) {
	a, found := idx.airlines[airlineID]
	if !found || !a.Active {
		return "", "", false
	}
	return a.IATA, a.ICAO, true
}
