package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strideworks/routes-backend-go/internal/config"
	"github.com/strideworks/routes-backend-go/internal/database"
	"github.com/strideworks/routes-backend-go/internal/handler"
	"github.com/strideworks/routes-backend-go/internal/middleware"
	"github.com/strideworks/routes-backend-go/internal/repository"
	"github.com/strideworks/routes-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Routes Backend API is running",
		})
	})

	routeRepo := repository.NewRouteRepository(database.GetDB())
	routeService := service.NewRouteService(routeRepo)
	routeHandler := handler.NewRouteHandler(routeService, cfg.MaxUploadBytes)

	api := r.Group("/api/v1")
	{
		routes := api.Group("/routes")
		{
			routes.GET("", routeHandler.GetRoutes)
			routes.GET("/:id", routeHandler.GetRouteByID)
			routes.GET("/:id/thumbnail", routeHandler.GetThumbnail)

			// Processing endpoints are rate limited per IP
			uploads := routes.Group("")
			uploads.Use(middleware.RateLimit(30, time.Minute))
			{
				uploads.POST("", routeHandler.UploadRoute)
				uploads.POST("/preview", routeHandler.PreviewRoute)
			}

			routes.DELETE("/:id", middleware.RequireAuth(cfg.JWTSecret), routeHandler.DeleteRoute)
		}
	}

	return r
}
