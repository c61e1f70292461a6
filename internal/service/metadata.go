package service

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/strideworks/routes-backend-go/internal/gpx"
	"github.com/strideworks/routes-backend-go/internal/models"
	"github.com/strideworks/routes-backend-go/internal/spatial"
)

// DefaultRouteName is used when neither the GPX document nor the filename
// yields a usable route name
const DefaultRouteName = "Unnamed Route"

// buildMetadata computes route statistics from the full-resolution parse.
// The parsed document must contain at least one track point.
func buildMetadata(doc *gpx.Document, filename string) (models.RouteMetadata, error) {
	if len(doc.Points) == 0 {
		return models.RouteMetadata{}, gpx.ErrNoTrackPoints
	}

	distance := spatial.PathLengthKm(doc.Points)

	meta := models.RouteMetadata{
		RouteName:       resolveRouteName(doc, filename),
		TotalDistanceKm: math.Round(distance*10) / 10,
		PointCount:      len(doc.Points),
		Bounds:          spatial.BoundingBox(doc.Points),
	}

	// Elevation stats in one pass. Points without elevation are skipped:
	// they neither reset the last-known elevation nor contribute gain.
	var gain float64
	var lastEle, minEle, maxEle *float64
	for _, p := range doc.Points {
		if p.Elevation == nil {
			continue
		}
		ele := *p.Elevation
		if lastEle != nil && ele > *lastEle {
			gain += ele - *lastEle
		}
		lastEle = p.Elevation

		if minEle == nil || ele < *minEle {
			minEle = p.Elevation
		}
		if maxEle == nil || ele > *maxEle {
			maxEle = p.Elevation
		}
	}

	meta.ElevationGainM = int(math.Round(gain))
	if minEle != nil {
		meta.HasElevationData = true
		meta.MinElevationM = roundToInt(*minEle)
		meta.MaxElevationM = roundToInt(*maxEle)
	}

	return meta, nil
}

// resolveRouteName picks the first non-empty candidate: track name,
// metadata name, cleaned filename, fixed default.
func resolveRouteName(doc *gpx.Document, filename string) string {
	if doc.TrackName != "" {
		return doc.TrackName
	}
	if doc.MetadataName != "" {
		return doc.MetadataName
	}
	if cleaned := cleanFilename(filename); cleaned != "" {
		return cleaned
	}
	return DefaultRouteName
}

// cleanFilename strips the extension and replaces separator characters
// with spaces, e.g. "morning_tempo-run.gpx" -> "morning tempo run"
func cleanFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}

func roundToInt(v float64) *int {
	i := int(math.Round(v))
	return &i
}
