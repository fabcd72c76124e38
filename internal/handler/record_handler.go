package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dengue-tracker-go/internal/listview"
	"dengue-tracker-go/internal/record"
	"dengue-tracker-go/pkg/model"
)

// RecordHandler handles dengue record HTTP requests
type RecordHandler struct {
	recordService *record.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *record.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// ListRecords handles GET /api/records. Query params: search (location
// substring), region (exact match), sort (location|cases|deaths|date|region),
// dir (asc|desc).
func (h *RecordHandler) ListRecords(c *gin.Context) {
	lv := listview.NewController(h.recordService)
	if err := lv.Refresh(); err != nil {
		log.Printf("Error fetching records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	lv.SetSearchTerm(c.Query("search"))
	lv.SetSelectedRegion(c.Query("region"))

	state := lv.State()
	if sortKey := c.Query("sort"); sortKey != "" {
		state.SortKey = sortKey
	}
	if c.Query("dir") == listview.Descending {
		state.SortDir = listview.Descending
	}

	c.JSON(http.StatusOK, model.RecordListResponse{
		Records:      listview.DeriveView(state, lv.Records()),
		TotalRecords: len(lv.Records()),
		Regions:      lv.Regions(),
	})
}

// AddRecord handles POST /api/records
func (h *RecordHandler) AddRecord(c *gin.Context) {
	var req model.RecordAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := model.BuildRecord(req.Location, req.Cases, req.Deaths, req.Date, req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.recordService.Create(rec)
	if err != nil {
		log.Printf("Error adding record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Record added successfully",
		"id":      id,
	})
}

// UpdateRecord handles PUT /api/records/:id. The edit flow replaces all
// five editable fields; a request missing any of them is rejected.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	var req model.RecordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := model.BuildRecord(req.Location, req.Cases, req.Deaths, req.Date, req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.recordService.Update(id, rec)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		log.Printf("Error updating record %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record updated successfully"})
}

// DeleteRecord handles DELETE /api/records/:id
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	err = h.recordService.Delete(id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		log.Printf("Error deleting record %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// GetRegions handles GET /api/regions, serving the zone lookup used by the
// frontend filter dropdown and registration form.
func (h *RecordHandler) GetRegions(c *gin.Context) {
	regions, err := h.recordService.GetRegions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch regions"})
		return
	}

	c.JSON(http.StatusOK, regions)
}
