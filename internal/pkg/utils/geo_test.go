package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runanywhere/runanywhere/internal/domain"
)

func TestBoundingBoxAround(t *testing.T) {
	tests := []struct {
		name   string
		center domain.Point
		margin float64
		want   domain.BoundingBox
	}{
		{
			name:   "cambridge",
			center: domain.Point{Lat: 42.374346, Lon: -71.116404},
			margin: 0.01,
			want:   domain.BoundingBox{MinLat: 42.364346, MinLon: -71.126404, MaxLat: 42.384346, MaxLon: -71.106404},
		},
		{
			name:   "origin",
			center: domain.Point{},
			margin: 0.01,
			want:   domain.BoundingBox{MinLat: -0.01, MinLon: -0.01, MaxLat: 0.01, MaxLon: 0.01},
		},
		{
			name:   "north pole clamps",
			center: domain.Point{Lat: 89.995, Lon: 179.995},
			margin: 0.01,
			want:   domain.BoundingBox{MinLat: 89.985, MinLon: 179.985, MaxLat: 90, MaxLon: 180},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundingBoxAround(tt.center, tt.margin)
			assert.InDelta(t, tt.want.MinLat, got.MinLat, 1e-9)
			assert.InDelta(t, tt.want.MinLon, got.MinLon, 1e-9)
			assert.InDelta(t, tt.want.MaxLat, got.MaxLat, 1e-9)
			assert.InDelta(t, tt.want.MaxLon, got.MaxLon, 1e-9)
		})
	}
}

func TestBoundingBox_String(t *testing.T) {
	bbox := domain.BoundingBox{MinLat: 42.377003, MinLon: -71.116661, MaxLat: 42.387596, MaxLon: -71.099495}
	assert.Equal(t, "42.377003,-71.116661,42.387596,-71.099495", bbox.String())
}

func TestHaversineDistance(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(52.52, 13.405, 52.52, 13.405))

	// Berlin TV Tower -> Brandenburg Gate, ~2.2 km
	d := HaversineDistance(52.5208, 13.4094, 52.5163, 13.3777)
	assert.InDelta(t, 2.2, d, 0.11)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(0, 0))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(90.0001, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
	assert.False(t, ValidateCoordinates(math.NaN(), 0))
}

func TestLineLengthKm(t *testing.T) {
	assert.Equal(t, 0.0, LineLengthKm(nil))
	assert.Equal(t, 0.0, LineLengthKm([][]float64{{13.405, 52.52}}))

	line := [][]float64{{13.4094, 52.5208}, {13.3777, 52.5163}}
	assert.InDelta(t, HaversineDistance(52.5208, 13.4094, 52.5163, 13.3777), LineLengthKm(line), 1e-9)
}
