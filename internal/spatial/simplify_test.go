package spatial

import (
	"testing"

	"github.com/strideworks/routes-backend-go/internal/models"
)

// zigzag builds n points alternating around a northward line with the
// given longitude amplitude in degrees
func zigzag(n int, amplitude float64) []models.GeoPoint {
	points := make([]models.GeoPoint, n)
	for i := range points {
		lng := 7.0
		if i%2 == 1 {
			lng += amplitude
		}
		points[i] = models.GeoPoint{
			Lat: 46.0 + float64(i)*0.0005,
			Lng: lng,
		}
	}
	return points
}

func TestSimplifyIdentityOnSmallInput(t *testing.T) {
	points := zigzag(8, 0.001)

	result := Simplify(points, 10)

	if len(result) != len(points) {
		t.Fatalf("Expected input returned unchanged, got %d of %d points", len(result), len(points))
	}
	for i := range points {
		if result[i] != points[i] {
			t.Errorf("Point %d changed: got %+v, want %+v", i, result[i], points[i])
		}
	}
}

func TestSimplifyTinyInputs(t *testing.T) {
	two := zigzag(2, 0.001)
	if got := Simplify(two, 300); len(got) != 2 {
		t.Errorf("Two-point input must pass through, got %d points", len(got))
	}

	one := zigzag(1, 0.001)
	if got := Simplify(one, 300); len(got) != 1 {
		t.Errorf("Single-point input must pass through, got %d points", len(got))
	}
}

func TestSimplifyEndpointPreservation(t *testing.T) {
	points := zigzag(500, 0.002)

	for _, target := range []int{300, 50, 10, 2} {
		result := Simplify(points, target)

		if len(result) == 0 {
			t.Fatalf("target %d: empty result", target)
		}
		if result[0] != points[0] {
			t.Errorf("target %d: first point not preserved", target)
		}
		if result[len(result)-1] != points[len(points)-1] {
			t.Errorf("target %d: last point not preserved", target)
		}
	}
}

func TestSimplifyCeiling(t *testing.T) {
	// Amplitude far above the maximum tolerance: every interior point
	// deviates too much to collapse, so the tolerance search cannot
	// converge and the stride fallback must enforce the cap.
	points := zigzag(1000, 0.1)

	result := Simplify(points, 50)

	if len(result) > 50 {
		t.Fatalf("Ceiling violated: got %d points for target 50", len(result))
	}
	if result[0] != points[0] || result[len(result)-1] != points[999] {
		t.Errorf("Fallback lost the endpoints")
	}
}

func TestSimplifyCeilingAcrossTargets(t *testing.T) {
	points := zigzag(1234, 0.05)

	for _, target := range []int{300, 100, 50, 7, 2} {
		result := Simplify(points, target)
		if len(result) > target {
			t.Errorf("target %d: got %d points", target, len(result))
		}
	}
}

func TestSimplifyCollapsesStraightLine(t *testing.T) {
	// Collinear points collapse to the two endpoints at any tolerance
	points := make([]models.GeoPoint, 100)
	for i := range points {
		points[i] = models.GeoPoint{Lat: 46.0 + float64(i)*0.001, Lng: 7.0}
	}

	result := Simplify(points, 50)

	if len(result) != 2 {
		t.Errorf("Expected straight line to collapse to endpoints, got %d points", len(result))
	}
}

func TestSimplifyKeepsOutlier(t *testing.T) {
	// Near-straight line with one far outlier: the outlier is the point
	// of greatest deviation and must survive
	points := make([]models.GeoPoint, 100)
	for i := range points {
		points[i] = models.GeoPoint{Lat: 46.0 + float64(i)*0.001, Lng: 7.0}
	}
	outlier := models.GeoPoint{Lat: 46.05, Lng: 7.5}
	points[50] = outlier

	result := Simplify(points, 10)

	found := false
	for _, p := range result {
		if p == outlier {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Outlier point dropped by simplification: %v", result)
	}
}

func TestStrideSampleExactCount(t *testing.T) {
	points := zigzag(1000, 0.1)

	result := strideSample(points, 50)

	if len(result) != 50 {
		t.Errorf("Expected exactly 50 points from stride fallback, got %d", len(result))
	}
	if result[0] != points[0] || result[49] != points[999] {
		t.Errorf("Stride fallback endpoints wrong")
	}
}

func TestDouglasPeuckerSeam(t *testing.T) {
	// The recursion joins sub-results at the split point; the shared
	// point must appear exactly once
	points := zigzag(9, 0.05)

	result := douglasPeucker(points, 1e-4)

	for i := 1; i < len(result); i++ {
		if result[i] == result[i-1] {
			t.Errorf("Duplicate seam point at index %d", i)
		}
	}
}
