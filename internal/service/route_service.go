package service

import (
	"fmt"
	"math"

	"github.com/strideworks/routes-backend-go/internal/gpx"
	"github.com/strideworks/routes-backend-go/internal/models"
	"github.com/strideworks/routes-backend-go/internal/repository"
	"github.com/strideworks/routes-backend-go/internal/spatial"
)

// Simplification targets for the two output resolutions
const (
	DisplayMaxPoints   = 300
	ThumbnailMaxPoints = 50
)

// RouteService handles GPX processing and business logic for stored routes
type RouteService struct {
	routeRepo *repository.RouteRepository
}

// NewRouteService creates a new route service
func NewRouteService(routeRepo *repository.RouteRepository) *RouteService {
	return &RouteService{
		routeRepo: routeRepo,
	}
}

// Process runs the full pipeline on raw GPX text: parse once, extract
// metadata from the same parse, then simplify twice from the
// full-resolution points. Nothing is persisted and the input is returned
// unchanged in the bundle.
func (s *RouteService) Process(gpxText string, filename string) (*models.SimplifiedRoute, error) {
	doc, err := gpx.Parse(gpxText)
	if err != nil {
		return nil, err
	}

	metadata, err := buildMetadata(doc, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to extract route metadata: %w", err)
	}

	return &models.SimplifiedRoute{
		Original:        gpxText,
		DisplayPoints:   spatial.Simplify(doc.Points, DisplayMaxPoints),
		ThumbnailPoints: spatial.Simplify(doc.Points, ThumbnailMaxPoints),
		Metadata:        metadata,
	}, nil
}

// ProcessAndStore processes GPX text and persists the result
func (s *RouteService) ProcessAndStore(gpxText string, filename string) (*models.RouteRecord, error) {
	route, err := s.Process(gpxText, filename)
	if err != nil {
		return nil, err
	}

	record, err := s.routeRepo.Create(route)
	if err != nil {
		return nil, fmt.Errorf("failed to store route: %w", err)
	}

	return record, nil
}

// GetRoutes retrieves stored route summaries with filtering and pagination
func (s *RouteService) GetRoutes(filter models.RouteFilter) (*models.RoutesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	summaries, total, err := s.routeRepo.GetSummaries(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get routes: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.RoutesResponse{
		Data:       summaries,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetRouteByID retrieves a single stored route with its display points
func (s *RouteService) GetRouteByID(id int64) (*models.RouteRecord, error) {
	record, err := s.routeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetThumbnail retrieves only the thumbnail point set of a stored route
func (s *RouteService) GetThumbnail(id int64) ([]models.GeoPoint, error) {
	record, err := s.routeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return record.ThumbnailPoints, nil
}

// DeleteRoute removes a stored route
func (s *RouteService) DeleteRoute(id int64) error {
	return s.routeRepo.Delete(id)
}
