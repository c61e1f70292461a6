package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/strideworks/routes-backend-go/internal/models"
)

// ErrNoTrackPoints is returned by the processing pipeline when a GPX
// document contains no trkpt elements
var ErrNoTrackPoints = errors.New("no track points found in GPX file")

// Document is the parsed content of a GPX file: the flattened track points
// in document order plus the route-name candidates.
type Document struct {
	TrackName    string
	MetadataName string
	Points       []models.GeoPoint
}

// Coordinate attributes and elevation are decoded as strings so a
// malformed number cannot abort the whole decode; coercion happens below.
type rawPoint struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
	Ele string `xml:"ele"`
}

type rawGPX struct {
	XMLName  xml.Name `xml:"gpx"`
	Metadata struct {
		Name string `xml:"name"`
	} `xml:"metadata"`
	Tracks []struct {
		Name     string `xml:"name"`
		Segments []struct {
			Points []rawPoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

// Parse decodes GPX text into a Document. Track points from all tracks and
// segments are flattened in document order.
//
// Missing or non-numeric lat/lon attributes coerce to 0.0 rather than
// failing the parse; a missing or non-numeric ele leaves the point's
// elevation unset. Only a malformed XML document itself is an error.
func Parse(data string) (*Document, error) {
	var raw rawGPX
	if err := xml.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	doc := &Document{
		MetadataName: strings.TrimSpace(raw.Metadata.Name),
	}

	for _, track := range raw.Tracks {
		if doc.TrackName == "" {
			doc.TrackName = strings.TrimSpace(track.Name)
		}
		for _, segment := range track.Segments {
			for _, pt := range segment.Points {
				doc.Points = append(doc.Points, models.GeoPoint{
					Lat:       coerceCoord(pt.Lat),
					Lng:       coerceCoord(pt.Lon),
					Elevation: parseElevation(pt.Ele),
				})
			}
		}
	}

	return doc, nil
}

// coerceCoord parses a coordinate attribute, defaulting to 0.0 on any
// failure. Intentionally lenient: bad coordinates become origin points
// instead of dropping the sample.
func coerceCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return v
}

func parseElevation(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
