package geo

import (
	"testing"

	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	p := models.Coordinate{Latitude: 55.751244, Longitude: 37.618423}
	assert.Zero(t, DistanceMeters(p, p))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Москва (Красная площадь) -> Санкт-Петербург (Дворцовая площадь), ~635 км
	moscow := models.Coordinate{Latitude: 55.753930, Longitude: 37.620795}
	spb := models.Coordinate{Latitude: 59.938955, Longitude: 30.315644}

	d := DistanceMeters(moscow, spb)
	assert.InDelta(t, 635000, d, 5000)
}

func TestDistanceMeters_ShortDistance(t *testing.T) {
	// Сдвиг на ~0.00045 градуса широты - примерно 50 метров
	a := models.Coordinate{Latitude: 55.751244, Longitude: 37.618423}
	b := models.Coordinate{Latitude: 55.751694, Longitude: 37.618423}

	d := DistanceMeters(a, b)
	assert.InDelta(t, 50, d, 1)
}

func TestWithinRadius(t *testing.T) {
	center := models.Coordinate{Latitude: 55.751244, Longitude: 37.618423}
	near := models.Coordinate{Latitude: 55.751334, Longitude: 37.618423}  // ~10 м
	far := models.Coordinate{Latitude: 55.752244, Longitude: 37.618423}   // ~111 м

	assert.True(t, WithinRadius(center, near, 50))
	assert.False(t, WithinRadius(center, far, 50))
}
