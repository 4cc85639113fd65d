package domain

// Path is an ordered sequence of airport codes from start to destination.
type Path []AirportCode

// Flights is the number of segments in the path.
func (p Path) Flights() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Segment is one flight of a resolved route.
type Segment struct {
	From    AirportCode
	To      AirportCode
	Airline string
	Stops   int
}

// RouteSummary is a path with per-segment carrier details.
type RouteSummary struct {
	Path       Path
	Segments   []Segment
	Flights    int
	ExtraStops int
}

// RoutePlan is the result of one search request. All is populated only in
// all-routes mode; Optimal and DistanceKM are always set.
type RoutePlan struct {
	From       AirportCode
	To         AirportCode
	All        []RouteSummary
	Optimal    RouteSummary
	DistanceKM float64
}
