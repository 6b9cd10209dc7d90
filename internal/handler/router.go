package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/internal/middleware"
	"ghost-dashboard/internal/session"
)

// SetupRouter registers every dashboard route
func SetupRouter(store *dataset.Store, sessions *session.Manager, allowedOrigins []string) *gin.Engine {
	dashboardHandler := NewDashboardHandler(store, sessions)
	chartHandler := NewChartHandler(store)

	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Public routes
	router.POST("/api/session", dashboardHandler.CreateSession)
	router.GET("/api/regions", dashboardHandler.GetRegions)
	router.GET("/api/regions/totals", dashboardHandler.GetRegionTotals)
	router.GET("/api/segments/totals", dashboardHandler.GetSegmentTotals)
	router.GET("/api/charts/regions.png", chartHandler.RegionChart)
	router.GET("/api/charts/segments.png", chartHandler.SegmentChart)

	// Session routes
	protected := router.Group("/api")
	protected.Use(middleware.SessionAuthMiddleware(sessions))
	{
		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.PUT("/dashboard/region", dashboardHandler.SelectRegion)
		protected.GET("/locations/:name", dashboardHandler.GetLocation)
	}

	return router
}
