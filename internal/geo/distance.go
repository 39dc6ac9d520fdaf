package geo

import (
	"math"

	"github.com/shenikar/venue_prompt_system/internal/models"
)

const earthRadiusMeters = 6371000

// DistanceMeters вычисляет расстояние между двумя точками по формуле гаверсинусов
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// WithinRadius проверяет, находится ли точка p в радиусе radiusMeters от центра center
func WithinRadius(center, p models.Coordinate, radiusMeters float64) bool {
	return DistanceMeters(center, p) <= radiusMeters
}
