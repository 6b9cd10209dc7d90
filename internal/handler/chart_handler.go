package handler

import (
	"bytes"
	"log"
	"net/http"

	"ghost-dashboard/internal/chart"
	"ghost-dashboard/internal/dataset"

	"github.com/gin-gonic/gin"
)

// ChartHandler serves chart images
type ChartHandler struct {
	store *dataset.Store
}

// NewChartHandler creates a new chart handler
func NewChartHandler(store *dataset.Store) *ChartHandler {
	return &ChartHandler{store: store}
}

// RegionChart handles GET /api/charts/regions.png
func (h *ChartHandler) RegionChart(c *gin.Context) {
	var buf bytes.Buffer
	if err := chart.RegionBar(&buf, h.store.RegionTotals()); err != nil {
		log.Printf("Error rendering region chart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// SegmentChart handles GET /api/charts/segments.png
func (h *ChartHandler) SegmentChart(c *gin.Context) {
	var buf bytes.Buffer
	if err := chart.SegmentPie(&buf, h.store.SegmentTotals()); err != nil {
		log.Printf("Error rendering segment chart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
