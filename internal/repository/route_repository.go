package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/strideworks/routes-backend-go/internal/models"
)

// ErrRouteNotFound is returned when a route id does not exist
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository handles database operations for processed routes
type RouteRepository struct {
	db *sql.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Create stores a processed route and returns the persisted record
func (r *RouteRepository) Create(route *models.SimplifiedRoute) (*models.RouteRecord, error) {
	displayJSON, err := json.Marshal(route.DisplayPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to encode display points: %w", err)
	}
	thumbnailJSON, err := json.Marshal(route.ThumbnailPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail points: %w", err)
	}

	m := route.Metadata
	result, err := r.db.Exec(`INSERT INTO routes
		(name, total_distance_km, elevation_gain_m, max_elevation_m, min_elevation_m,
		 point_count, min_lat, max_lat, min_lng, max_lng, has_elevation,
		 display_points, thumbnail_points, original_gpx)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.RouteName, m.TotalDistanceKm, m.ElevationGainM,
		nullableInt(m.MaxElevationM), nullableInt(m.MinElevationM),
		m.PointCount, m.Bounds.MinLat, m.Bounds.MaxLat, m.Bounds.MinLng, m.Bounds.MaxLng,
		m.HasElevationData, string(displayJSON), string(thumbnailJSON), route.Original,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert route: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get route id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID retrieves a single route with its full point sets
func (r *RouteRepository) GetByID(id int64) (*models.RouteRecord, error) {
	row := r.db.QueryRow(`SELECT id, name, total_distance_km, elevation_gain_m,
		max_elevation_m, min_elevation_m, point_count,
		min_lat, max_lat, min_lng, max_lng, has_elevation,
		display_points, thumbnail_points, original_gpx, created_at
		FROM routes WHERE id = ?`, id)

	var record models.RouteRecord
	var maxEle, minEle sql.NullInt64
	var displayJSON, thumbnailJSON string

	err := row.Scan(
		&record.ID, &record.Metadata.RouteName, &record.Metadata.TotalDistanceKm,
		&record.Metadata.ElevationGainM, &maxEle, &minEle, &record.Metadata.PointCount,
		&record.Metadata.Bounds.MinLat, &record.Metadata.Bounds.MaxLat,
		&record.Metadata.Bounds.MinLng, &record.Metadata.Bounds.MaxLng,
		&record.Metadata.HasElevationData,
		&displayJSON, &thumbnailJSON, &record.OriginalGPX, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan route: %w", err)
	}

	if maxEle.Valid {
		v := int(maxEle.Int64)
		record.Metadata.MaxElevationM = &v
	}
	if minEle.Valid {
		v := int(minEle.Int64)
		record.Metadata.MinElevationM = &v
	}

	if err := json.Unmarshal([]byte(displayJSON), &record.DisplayPoints); err != nil {
		return nil, fmt.Errorf("failed to decode display points: %w", err)
	}
	if err := json.Unmarshal([]byte(thumbnailJSON), &record.ThumbnailPoints); err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail points: %w", err)
	}

	return &record, nil
}

// GetSummaries retrieves route summaries with filtering and pagination.
// Summaries carry the thumbnail point set but not display points or the
// original GPX text.
func (r *RouteRepository) GetSummaries(filter models.RouteFilter) ([]models.RouteSummary, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.MinDistanceKm > 0 {
		conditions = append(conditions, "total_distance_km >= ?")
		args = append(args, filter.MinDistanceKm)
	}
	if filter.MaxDistanceKm > 0 {
		conditions = append(conditions, "total_distance_km <= ?")
		args = append(args, filter.MaxDistanceKm)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM routes"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count routes: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT id, name, total_distance_km, elevation_gain_m,
		max_elevation_m, min_elevation_m, point_count,
		min_lat, max_lat, min_lng, max_lng, has_elevation,
		thumbnail_points, created_at
		FROM routes` + where + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var summaries []models.RouteSummary
	for rows.Next() {
		var s models.RouteSummary
		var maxEle, minEle sql.NullInt64
		var thumbnailJSON string

		err := rows.Scan(
			&s.ID, &s.Metadata.RouteName, &s.Metadata.TotalDistanceKm,
			&s.Metadata.ElevationGainM, &maxEle, &minEle, &s.Metadata.PointCount,
			&s.Metadata.Bounds.MinLat, &s.Metadata.Bounds.MaxLat,
			&s.Metadata.Bounds.MinLng, &s.Metadata.Bounds.MaxLng,
			&s.Metadata.HasElevationData, &thumbnailJSON, &s.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan route summary: %w", err)
		}

		if maxEle.Valid {
			v := int(maxEle.Int64)
			s.Metadata.MaxElevationM = &v
		}
		if minEle.Valid {
			v := int(minEle.Int64)
			s.Metadata.MinElevationM = &v
		}
		if err := json.Unmarshal([]byte(thumbnailJSON), &s.ThumbnailPoints); err != nil {
			return nil, 0, fmt.Errorf("failed to decode thumbnail points: %w", err)
		}

		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate routes: %w", err)
	}

	return summaries, total, nil
}

// Delete removes a stored route
func (r *RouteRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM routes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrRouteNotFound
	}

	return nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
