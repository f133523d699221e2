package utils

import (
	"math"

	"github.com/runanywhere/runanywhere/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundingBoxAround строит квадрат center ± margin (в градусах).
// Края зажимаются только у полюсов и антимеридиана.
func BoundingBoxAround(center domain.Point, margin float64) domain.BoundingBox {
	return domain.BoundingBox{
		MinLat: clamp(center.Lat-margin, -90, 90),
		MinLon: clamp(center.Lon-margin, -180, 180),
		MaxLat: clamp(center.Lat+margin, -90, 90),
		MaxLon: clamp(center.Lon+margin, -180, 180),
	}
}

// LineLengthKm - длина ломаной из пар [lng, lat] в километрах
func LineLengthKm(points [][]float64) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if len(prev) < 2 || len(cur) < 2 {
			continue
		}
		total += HaversineDistance(prev[1], prev[0], cur[1], cur[0])
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
