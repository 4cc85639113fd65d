package domain

import "errors"

var (
	// ErrUnsupportedLocation: the requested place has no usable airport code.
	ErrUnsupportedLocation = errors.New("unsupported location")
	// ErrNoRoute: the search exhausted its depth bound without a meeting point.
	ErrNoRoute = errors.New("no route found")
	// ErrNoCoordinate: an airport on a candidate path has no geolocation.
	ErrNoCoordinate = errors.New("no coordinate data")
	// ErrNoOptimalRoute: every candidate was missing coordinate data.
	ErrNoOptimalRoute = errors.New("no optimal route")
	// ErrNoAirlineLabel: no edge of a segment resolves to a usable carrier label.
	ErrNoAirlineLabel = errors.New("no usable airline label")
)
