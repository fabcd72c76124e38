package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dengue-tracker-go/internal/chart"
	"dengue-tracker-go/pkg/model"
)

// RecordSource is the read-only slice of the record service the chart
// projections need.
type RecordSource interface {
	ListAll() ([]model.DengueRecord, error)
}

// ChartHandler serves the chart-ready projections consumed by the
// visualization screen. Each endpoint returns its projection shape
// directly as the response body.
type ChartHandler struct {
	records RecordSource
}

// NewChartHandler creates a new chart handler
func NewChartHandler(records RecordSource) *ChartHandler {
	return &ChartHandler{
		records: records,
	}
}

func (h *ChartHandler) fetch(c *gin.Context) ([]model.DengueRecord, bool) {
	records, err := h.records.ListAll()
	if err != nil {
		log.Printf("Error fetching records for chart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return nil, false
	}
	return records, true
}

// CasesByRegion handles GET /api/charts/cases-by-region
func (h *ChartHandler) CasesByRegion(c *gin.Context) {
	records, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chart.CasesByRegion(records))
}

// CasesOverTime handles GET /api/charts/cases-over-time
func (h *ChartHandler) CasesOverTime(c *gin.Context) {
	records, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chart.CasesByDate(records))
}

// DeathsOverTime handles GET /api/charts/deaths-over-time
func (h *ChartHandler) DeathsOverTime(c *gin.Context) {
	records, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chart.DeathsByDate(records))
}

// CasesVsDeaths handles GET /api/charts/cases-vs-deaths
func (h *ChartHandler) CasesVsDeaths(c *gin.Context) {
	records, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chart.CasesDeathsPairs(records))
}
