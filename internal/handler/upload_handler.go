package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dengue-tracker-go/internal/importer"
	"dengue-tracker-go/pkg/model"
)

// UploadHandler handles CSV bulk imports
type UploadHandler struct {
	importer *importer.Importer
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(imp *importer.Importer) *UploadHandler {
	return &UploadHandler{
		importer: imp,
	}
}

// UploadCSV handles POST /api/records/upload. The file arrives as the
// multipart field "file".
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a CSV file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importer.Import(file)
	if err != nil {
		var parseErr *model.ParseError
		if errors.As(err, &parseErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
			return
		}
		// A store failure mid-batch; rows created before it stay put.
		log.Printf("Error importing CSV %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Error uploading CSV data",
			"result": result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "CSV data uploaded successfully",
		"result":  result,
	})
}
