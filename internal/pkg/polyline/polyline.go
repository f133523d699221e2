// Package polyline decodes Google encoded polylines and reorients them for
// GeoJSON consumers, which expect [lng, lat] pairs instead of [lat, lng].
package polyline

import (
	"fmt"

	gopolyline "github.com/twpayne/go-polyline"
)

// Decode turns an encoded polyline into [lat, lng] pairs (precision 1e-5).
func Decode(encoded string) ([][]float64, error) {
	if encoded == "" {
		return [][]float64{}, nil
	}

	coords, rest, err := gopolyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("decode polyline: %d trailing bytes", len(rest))
	}

	return coords, nil
}

// Encode is the inverse of Decode.
func Encode(coords [][]float64) string {
	return string(gopolyline.EncodeCoords(coords))
}

// Flip reverses the axis order of every pair. The input is left untouched.
func Flip(coords [][]float64) [][]float64 {
	flipped := make([][]float64, len(coords))
	for i, c := range coords {
		r := make([]float64, len(c))
		for j := range c {
			r[j] = c[len(c)-1-j]
		}
		flipped[i] = r
	}
	return flipped
}

// DecodeLngLat decodes and returns [lng, lat] pairs ready for a GeoJSON LineString.
func DecodeLngLat(encoded string) ([][]float64, error) {
	coords, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	return Flip(coords), nil
}
