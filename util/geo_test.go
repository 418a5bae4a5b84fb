package util

import (
	"taberu_api_ms/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	london := domain.GeoPoint{Latitude: 51.5074, Longitude: -0.1278}
	paris := domain.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}

	// Known distance London-Paris is roughly 344 km
	assert.InDelta(t, 344, HaversineKm(london, paris), 3)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := domain.GeoPoint{Latitude: 40.4168, Longitude: -3.7038}
	b := domain.GeoPoint{Latitude: 41.3874, Longitude: 2.1686}

	assert.Equal(t, HaversineKm(a, b), HaversineKm(b, a))
}

func TestHaversineKm_SamePoint(t *testing.T) {
	p := domain.GeoPoint{Latitude: 35.6762, Longitude: 139.6503}

	assert.Zero(t, HaversineKm(p, p))
}
