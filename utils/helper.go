package utils

import "fmt"

// ValidateCoordinates checks that a latitude/longitude pair is inside the
// valid degree ranges.
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %v", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %v", longitude)
	}
	return nil
}
