// Package geo computes great-circle distances between airport coordinates.
package geo

import (
	"math"

	"github.com/kofiantwi/airroutes/internal/domain"
)

// EarthRadiusKM is the mean earth radius used by the haversine formula.
const EarthRadiusKM = 6371.0

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b domain.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(h))
}

// PathDistance sums the pairwise great-circle distance over consecutive
// coordinates.
func PathDistance(coords []domain.Coordinate) float64 {
	var total float64
	for i := 0; i+1 < len(coords); i++ {
		total += Haversine(coords[i], coords[i+1])
	}
	return total
}
