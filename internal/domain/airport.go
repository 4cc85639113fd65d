package domain

// NullSentinel marks a missing value in the OpenFlights data (`\N`).
const NullSentinel = `\N`

// AirportCode is the short identifier keying airports in the route graph.
type AirportCode string

// Valid reports whether the code is usable as a graph key.
func (c AirportCode) Valid() bool {
	return c != "" && string(c) != NullSentinel
}

type Coordinate struct {
	Lat float64
	Lon float64
}

type Airport struct {
	City     string
	Country  string
	Code     AirportCode
	Coord    Coordinate
	HasCoord bool
}

type Airline struct {
	ID     int
	IATA   string
	ICAO   string
	Active bool
}

// RouteEdge is one directed route segment operated by a single airline.
// Several edges may connect the same airport pair.
type RouteEdge struct {
	AirlineID int
	From      AirportCode
	To        AirportCode
	Stops     int
}
