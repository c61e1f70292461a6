package spatial

import (
	"math"
	"testing"

	"github.com/strideworks/routes-backend-go/internal/models"
)

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is roughly 111.2 km on a 6371 km sphere
	dist := HaversineDistanceKm(0, 0, 1, 0)

	expected := 111.2
	if math.Abs(dist-expected) > 0.1 {
		t.Errorf("Expected ~%.1f km for one degree of latitude, got %.3f km", expected, dist)
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	if dist := HaversineDistanceKm(46.5, 7.5, 46.5, 7.5); dist != 0 {
		t.Errorf("Expected zero distance for identical points, got %f", dist)
	}
}

func TestPathLengthKm(t *testing.T) {
	points := []models.GeoPoint{
		{Lat: 46.0, Lng: 7.0},
		{Lat: 46.001, Lng: 7.001}, // ~140m
		{Lat: 46.002, Lng: 7.002}, // ~140m more
	}

	total := PathLengthKm(points)
	expected := 0.28 // approximately 2 * 140m

	if math.Abs(total-expected) > 0.02 {
		t.Errorf("Total distance incorrect: got %.3f km, expected ~%.2f km", total, expected)
	}

	if total < 0 {
		t.Errorf("Path length must be non-negative, got %f", total)
	}
}

func TestPathLengthDegenerate(t *testing.T) {
	if d := PathLengthKm(nil); d != 0 {
		t.Errorf("Expected 0 for empty path, got %f", d)
	}
	if d := PathLengthKm([]models.GeoPoint{{Lat: 1, Lng: 1}}); d != 0 {
		t.Errorf("Expected 0 for single point, got %f", d)
	}
}

func TestBoundingBox(t *testing.T) {
	points := []models.GeoPoint{
		{Lat: 46.0, Lng: 7.5},
		{Lat: 47.2, Lng: 6.9},
		{Lat: 45.8, Lng: 8.1},
	}

	b := BoundingBox(points)

	if b.MinLat != 45.8 || b.MaxLat != 47.2 {
		t.Errorf("Latitude bounds wrong: got [%f, %f]", b.MinLat, b.MaxLat)
	}
	if b.MinLng != 6.9 || b.MaxLng != 8.1 {
		t.Errorf("Longitude bounds wrong: got [%f, %f]", b.MinLng, b.MaxLng)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	b := BoundingBox(nil)
	if b != (models.Bounds{}) {
		t.Errorf("Expected zero bounds for empty input, got %+v", b)
	}
}
