package model

import (
	"time"
)

// DengueRecord represents one epidemiological data point
type DengueRecord struct {
	ID        int       `json:"id" db:"id"`
	Location  string    `json:"location" db:"location"`
	Cases     int       `json:"cases" db:"cases"`
	Deaths    int       `json:"deaths" db:"deaths"`
	Date      string    `json:"date" db:"date"` // ISO-8601 (YYYY-MM-DD), doubles as the grouping key
	Region    string    `json:"region" db:"region"`
	Year      *int      `json:"year,omitempty" db:"year"` // populated by CSV import only
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RecordAddRequest represents the request to add a single record
type RecordAddRequest struct {
	Location string `json:"location" binding:"required"`
	Cases    string `json:"cases" binding:"required"`
	Deaths   string `json:"deaths" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Region   string `json:"region" binding:"required"`
}

// RecordUpdateRequest carries the full replacement values for an edit.
// All five editable fields must be present; the ID is taken from the URL.
type RecordUpdateRequest struct {
	Location string `json:"location"`
	Cases    string `json:"cases"`
	Deaths   string `json:"deaths"`
	Date     string `json:"date"`
	Region   string `json:"region"`
}

// RecordListResponse represents the response for record listing
type RecordListResponse struct {
	Records      []DengueRecord `json:"records"`
	TotalRecords int            `json:"total_records"`
	Regions      []string       `json:"regions"` // distinct raw regions for the filter dropdown
}

// ImportResult summarizes a CSV bulk import
type ImportResult struct {
	Created     int   `json:"created"`
	Skipped     int   `json:"skipped"`
	SkippedRows []int `json:"skipped_rows,omitempty"` // 1-based row numbers within the file
}
