package models

// GeoPoint represents a single GPS sample from a GPX track.
// Elevation is nil when the source point carried no parseable <ele> tag.
type GeoPoint struct {
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Elevation *float64 `json:"elevation,omitempty"`
}

// Bounds is the axis-aligned bounding box over all parsed points
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// RouteMetadata holds the statistics computed from a full-resolution parse
type RouteMetadata struct {
	RouteName        string  `json:"routeName"`
	TotalDistanceKm  float64 `json:"totalDistanceKm"` // rounded to 1 decimal
	ElevationGainM   int     `json:"elevationGainM"`
	MaxElevationM    *int    `json:"maxElevationM"` // nil when no point has elevation
	MinElevationM    *int    `json:"minElevationM"`
	PointCount       int     `json:"pointCount"` // before simplification
	Bounds           Bounds  `json:"bounds"`
	HasElevationData bool    `json:"hasElevationData"`
}

// SimplifiedRoute is the output bundle of one processing pass:
// the untouched input text, two simplified point sets, and the metadata.
type SimplifiedRoute struct {
	Original        string        `json:"original"`
	DisplayPoints   []GeoPoint    `json:"displayPoints"`   // capped at 300
	ThumbnailPoints []GeoPoint    `json:"thumbnailPoints"` // capped at 50
	Metadata        RouteMetadata `json:"metadata"`
}

// RouteRecord is a processed route as stored in the routes table
type RouteRecord struct {
	ID              int64         `json:"id"`
	Metadata        RouteMetadata `json:"metadata"`
	DisplayPoints   []GeoPoint    `json:"displayPoints,omitempty"`
	ThumbnailPoints []GeoPoint    `json:"thumbnailPoints,omitempty"`
	OriginalGPX     string        `json:"originalGpx,omitempty"`
	CreatedAt       string        `json:"createdAt"`
}

// RouteSummary is the listing shape: metadata plus thumbnail, no full data
type RouteSummary struct {
	ID              int64         `json:"id"`
	Metadata        RouteMetadata `json:"metadata"`
	ThumbnailPoints []GeoPoint    `json:"thumbnailPoints"`
	CreatedAt       string        `json:"createdAt"`
}

// RoutesResponse represents a paginated response of route summaries
type RoutesResponse struct {
	Data       []RouteSummary `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// RouteFilter represents filter parameters for querying stored routes
type RouteFilter struct {
	Name          string  `form:"name"`          // substring match on route name
	MinDistanceKm float64 `form:"minDistanceKm"`
	MaxDistanceKm float64 `form:"maxDistanceKm"`
	Page          int     `form:"page"`
	PageSize      int     `form:"pageSize"`
}
