package discovery

import "math"

const earthRadiusKm = 6371.0

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance computes the great-circle distance between two coordinates in
// kilometers using the Haversine formula. NaN inputs propagate.
func Distance(from, to Coordinates) float64 {
	dLat := degreesToRadians(to.Lat - from.Lat)
	dLon := degreesToRadians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(from.Lat))*math.Cos(degreesToRadians(to.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
