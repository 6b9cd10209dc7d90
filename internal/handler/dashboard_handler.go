package handler

import (
	"errors"
	"log"
	"net/http"

	"ghost-dashboard/internal/dashboard"
	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/internal/filter"
	"ghost-dashboard/internal/render"
	"ghost-dashboard/internal/session"
	"ghost-dashboard/pkg/model"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard session HTTP requests
type DashboardHandler struct {
	store    *dataset.Store
	sessions *session.Manager
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store *dataset.Store, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{
		store:    store,
		sessions: sessions,
	}
}

// CreateSession handles POST /api/session
func (h *DashboardHandler) CreateSession(c *gin.Context) {
	id, token, err := h.sessions.Create()
	if err != nil {
		log.Printf("Error creating session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, model.SessionResponse{
		SessionID: id,
		Token:     token,
	})
}

// sessionDashboard resolves the dashboard of the authenticated session.
// It writes the error response itself and returns nil on failure.
func (h *DashboardHandler) sessionDashboard(c *gin.Context) *dashboard.Dashboard {
	sessionID := c.GetString("session_id") // Set by session middleware
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil
	}

	dash, err := h.sessions.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return nil
	}
	return dash
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dash := h.sessionDashboard(c)
	if dash == nil {
		return
	}

	c.JSON(http.StatusOK, dash.State())
}

// SelectRegion handles PUT /api/dashboard/region
func (h *DashboardHandler) SelectRegion(c *gin.Context) {
	dash := h.sessionDashboard(c)
	if dash == nil {
		return
	}

	var req model.RegionSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dash.SelectRegion(req.RegionID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash.State())
}

// GetLocation handles GET /api/locations/:name
func (h *DashboardHandler) GetLocation(c *gin.Context) {
	dash := h.sessionDashboard(c)
	if dash == nil {
		return
	}

	detail, err := dash.LocationDetail(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetRegions handles GET /api/regions and lists the region filter buttons
func (h *DashboardHandler) GetRegions(c *gin.Context) {
	regions := h.store.Regions()
	buttons := make([]model.RegionDescriptor, 0, len(regions)+1)
	buttons = append(buttons, model.AllRegionsDescriptor())
	for _, r := range regions {
		buttons = append(buttons, r.Descriptor())
	}

	c.JSON(http.StatusOK, buttons)
}

// GetSegmentTotals handles GET /api/segments/totals
func (h *DashboardHandler) GetSegmentTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SegmentTotals())
}

// GetRegionTotals handles GET /api/regions/totals
func (h *DashboardHandler) GetRegionTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.RegionTotals())
}

// writeError maps domain errors to HTTP responses
func writeError(c *gin.Context, err error) {
	var (
		invalidRegion *filter.InvalidRegionError
		notFound      *dataset.NotFoundError
		unknownStatus *render.UnknownStatusError
	)

	switch {
	case errors.As(err, &invalidRegion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &unknownStatus):
		log.Printf("Render failed on bad data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render dashboard: " + err.Error()})
	default:
		log.Printf("Unexpected dashboard error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
