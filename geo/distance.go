// Package geo computes great-circle distances between coordinate pairs.
package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// latitude/longitude pairs, computed with the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(radians(lat1))*math.Cos(radians(lat2))*sinLon*sinLon

	// Rounding can push a just past 1 for antipodal points, which would
	// turn Sqrt(1-a) into NaN.
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
