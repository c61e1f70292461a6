package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/strideworks/routes-backend-go/internal/models"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistanceKm calculates the great-circle distance between two points
// in kilometers using the Haversine formula
func HaversineDistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// PathLengthKm calculates the total length of a path (ordered point
// sequence) in kilometers, ignoring elevation
func PathLengthKm(points []models.GeoPoint) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalDist float64
	for i := 1; i < len(points); i++ {
		totalDist += HaversineDistanceKm(points[i-1].Lat, points[i-1].Lng, points[i].Lat, points[i].Lng)
	}

	return totalDist
}

// BoundingBox calculates the bounding box of a set of points
func BoundingBox(points []models.GeoPoint) models.Bounds {
	if len(points) == 0 {
		return models.Bounds{}
	}

	b := models.Bounds{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLng: points[0].Lng,
	}

	for _, p := range points[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lng < b.MinLng {
			b.MinLng = p.Lng
		}
		if p.Lng > b.MaxLng {
			b.MaxLng = p.Lng
		}
	}

	return b
}
