package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"Aleppo", 36.1999, 37.1500, false},
		{"equator meridian", 0, 0, false},
		{"poles and date line", 90, 180, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -90.1, 0, true},
		{"longitude too high", 0, 180.1, true},
		{"longitude too low", 0, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lng)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
