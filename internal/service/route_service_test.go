package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/strideworks/routes-backend-go/internal/gpx"
)

// buildSyntheticGPX renders n zig-zag track points with elevation values
func buildSyntheticGPX(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx version="1.1" creator="test"><trk><name>Zigzag Long Run</name><trkseg>` + "\n")
	for i := 0; i < n; i++ {
		lat := 46.0 + float64(i)*0.0005
		lng := 7.0
		if i%2 == 1 {
			lng += 0.05
		}
		elevation := 500.0 + float64(i%20)*3
		fmt.Fprintf(&b, `<trkpt lat="%f" lon="%f"><ele>%f</ele></trkpt>`+"\n", lat, lng, elevation)
	}
	b.WriteString(`</trkseg></trk></gpx>`)
	return b.String()
}

func TestProcessEndToEnd(t *testing.T) {
	gpxText := buildSyntheticGPX(1000)
	svc := NewRouteService(nil) // Process touches no repository

	route, err := svc.Process(gpxText, "long_run.gpx")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if route.Original != gpxText {
		t.Error("Original text must pass through unchanged")
	}
	if len(route.DisplayPoints) > DisplayMaxPoints {
		t.Errorf("Display points exceed cap: %d > %d", len(route.DisplayPoints), DisplayMaxPoints)
	}
	if len(route.ThumbnailPoints) > ThumbnailMaxPoints {
		t.Errorf("Thumbnail points exceed cap: %d > %d", len(route.ThumbnailPoints), ThumbnailMaxPoints)
	}
	if route.Metadata.PointCount != 1000 {
		t.Errorf("Expected point count 1000, got %d", route.Metadata.PointCount)
	}
	if !route.Metadata.HasElevationData {
		t.Error("Expected hasElevationData true")
	}
	if route.Metadata.RouteName != "Zigzag Long Run" {
		t.Errorf("Expected track name, got %q", route.Metadata.RouteName)
	}

	// Both simplified sets share the original endpoints
	display := route.DisplayPoints
	thumbnail := route.ThumbnailPoints
	if display[0].Lat != 46.0 || thumbnail[0].Lat != 46.0 {
		t.Error("First point not preserved in simplified sets")
	}
	lastLat := 46.0 + 999*0.0005
	if math.Abs(display[len(display)-1].Lat-lastLat) > 1e-9 ||
		math.Abs(thumbnail[len(thumbnail)-1].Lat-lastLat) > 1e-9 {
		t.Error("Last point not preserved in simplified sets")
	}
}

func TestProcessSimplificationsAreIndependent(t *testing.T) {
	// Both resolutions start from the full parse, so a display run must
	// not influence the thumbnail result
	gpxText := buildSyntheticGPX(400)
	svc := NewRouteService(nil)

	first, err := svc.Process(gpxText, "")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	second, err := svc.Process(gpxText, "")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(first.ThumbnailPoints) != len(second.ThumbnailPoints) {
		t.Errorf("Processing is not deterministic: %d vs %d thumbnail points",
			len(first.ThumbnailPoints), len(second.ThumbnailPoints))
	}
}

func TestProcessNoTrackPoints(t *testing.T) {
	svc := NewRouteService(nil)

	_, err := svc.Process(`<gpx><trk><name>Empty</name><trkseg></trkseg></trk></gpx>`, "empty.gpx")
	if !errors.Is(err, gpx.ErrNoTrackPoints) {
		t.Errorf("Expected ErrNoTrackPoints, got %v", err)
	}
}

func TestProcessInvalidXML(t *testing.T) {
	svc := NewRouteService(nil)

	if _, err := svc.Process("<gpx><trk", "broken.gpx"); err == nil {
		t.Error("Expected error for malformed XML")
	}
}
