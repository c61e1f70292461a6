package spatial

import (
	"math"

	"github.com/strideworks/routes-backend-go/internal/models"
)

// Tolerance range for the adaptive Douglas-Peucker search. Tolerances are
// in raw degree space, matching the perpendicular distance below.
const (
	baseTolerance   = 1e-4
	maxTolerance    = 1e-2
	toleranceGrowth = 1.5
)

// Simplify reduces an ordered point sequence to at most maxPoints using the
// Ramer-Douglas-Peucker algorithm with an adaptive tolerance search.
//
// Inputs already within the cap are returned unchanged. When the tolerance
// range is exhausted without reaching the cap, a uniform-stride fallback
// guarantees the ceiling. The first and last input points always survive.
//
// maxPoints < 2 is not a supported input; it degrades to the two endpoints.
func Simplify(points []models.GeoPoint, maxPoints int) []models.GeoPoint {
	if len(points) <= maxPoints || len(points) <= 2 {
		return points
	}
	if maxPoints < 2 {
		return []models.GeoPoint{points[0], points[len(points)-1]}
	}

	tolerance := baseTolerance
	simplified := douglasPeucker(points, tolerance)

	for len(simplified) > maxPoints && tolerance < maxTolerance {
		tolerance *= toleranceGrowth
		simplified = douglasPeucker(points, tolerance)
	}

	if len(simplified) > maxPoints {
		return strideSample(points, maxPoints)
	}

	return simplified
}

// douglasPeucker recursively simplifies a path: interior points within
// epsilon of the start-end chord collapse away, the farthest point outside
// it splits the segment in two.
func douglasPeucker(points []models.GeoPoint, epsilon float64) []models.GeoPoint {
	if len(points) < 3 {
		return points
	}

	// Find the point with maximum distance from the chord
	maxDist := 0.0
	maxIndex := 0

	for i := 1; i < len(points)-1; i++ {
		dist := perpendicularDistance(points[i], points[0], points[len(points)-1])
		if dist > maxDist {
			maxDist = dist
			maxIndex = i
		}
	}

	if maxDist > epsilon {
		left := douglasPeucker(points[:maxIndex+1], epsilon)
		right := douglasPeucker(points[maxIndex:], epsilon)

		// Combine results, dropping the duplicate point at the seam
		result := make([]models.GeoPoint, len(left)+len(right)-1)
		copy(result, left)
		copy(result[len(left):], right[1:])
		return result
	}

	return []models.GeoPoint{points[0], points[len(points)-1]}
}

// perpendicularDistance is the distance from a point to the line through
// lineStart and lineEnd, computed directly in lat/lng degree space. The
// selection of surviving points depends on this staying planar; a geodesic
// distance here would pick different survivors.
func perpendicularDistance(point, lineStart, lineEnd models.GeoPoint) float64 {
	x0, y0 := point.Lat, point.Lng
	x1, y1 := lineStart.Lat, lineStart.Lng
	x2, y2 := lineEnd.Lat, lineEnd.Lng

	num := math.Abs((y2-y1)*x0 - (x2-x1)*y0 + x2*y1 - y2*x1)
	den := math.Hypot(y2-y1, x2-x1)

	if den == 0 {
		// Degenerate chord: endpoints coincide
		return math.Hypot(x0-x1, y0-y1)
	}

	return num / den
}

// strideSample takes every Nth point, N = floor(len/target), truncates to
// exactly target points and forces the original last point into the final
// slot. This is the hard-ceiling fallback for geometry that defeats the
// tolerance search.
func strideSample(points []models.GeoPoint, target int) []models.GeoPoint {
	step := len(points) / target
	if step < 1 {
		step = 1
	}

	result := make([]models.GeoPoint, 0, target)
	for i := 0; i < len(points); i += step {
		result = append(result, points[i])
	}

	if len(result) > target {
		result = result[:target]
	}
	result[len(result)-1] = points[len(points)-1]

	return result
}
