package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/strideworks/routes-backend-go/internal/gpx"
	"github.com/strideworks/routes-backend-go/internal/models"
	"github.com/strideworks/routes-backend-go/internal/repository"
	"github.com/strideworks/routes-backend-go/internal/service"
	"github.com/strideworks/routes-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for GPX route processing
type RouteHandler struct {
	routeService   *service.RouteService
	maxUploadBytes int64
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeService *service.RouteService, maxUploadBytes int64) *RouteHandler {
	return &RouteHandler{
		routeService:   routeService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadRoute handles POST /api/v1/routes
// Accepts a multipart GPX file, processes it and persists the result.
func (h *RouteHandler) UploadRoute(c *gin.Context) {
	gpxText, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	record, err := h.routeService.ProcessAndStore(gpxText, filename)
	if err != nil {
		if errors.Is(err, gpx.ErrNoTrackPoints) {
			response.BadRequest(c, "GPX file contains no track points")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, record)
}

// PreviewRoute handles POST /api/v1/routes/preview
// Runs the processing pipeline without persisting anything.
func (h *RouteHandler) PreviewRoute(c *gin.Context) {
	gpxText, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	route, err := h.routeService.Process(gpxText, filename)
	if err != nil {
		if errors.Is(err, gpx.ErrNoTrackPoints) {
			response.BadRequest(c, "GPX file contains no track points")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, route)
}

// GetRoutes handles GET /api/v1/routes
func (h *RouteHandler) GetRoutes(c *gin.Context) {
	var filter models.RouteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.routeService.GetRoutes(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetRouteByID handles GET /api/v1/routes/:id
func (h *RouteHandler) GetRouteByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.routeService.GetRouteByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			response.NotFound(c, "Route not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, record)
}

// GetThumbnail handles GET /api/v1/routes/:id/thumbnail
func (h *RouteHandler) GetThumbnail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	points, err := h.routeService.GetThumbnail(id)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			response.NotFound(c, "Route not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"points": points,
		"count":  len(points),
	})
}

// DeleteRoute handles DELETE /api/v1/routes/:id
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.routeService.DeleteRoute(id); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			response.NotFound(c, "Route not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

// readUpload extracts the GPX text from the multipart "file" part. On
// failure it writes the error response itself and returns ok=false.
func (h *RouteHandler) readUpload(c *gin.Context) (string, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing GPX file upload")
		return "", "", false
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		response.BadRequest(c, "GPX file too large")
		return "", "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to read upload")
		return "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c, "Failed to read upload")
		return "", "", false
	}

	return string(data), fileHeader.Filename, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid route ID")
		return 0, false
	}
	return id, true
}
