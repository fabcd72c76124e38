package record

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"dengue-tracker-go/pkg/model"
)

// ErrNotFound is returned when the requested record does not exist
var ErrNotFound = errors.New("record not found")

// RecordService handles persistence of dengue records
type RecordService struct {
	db *sqlx.DB
}

// NewRecordService creates a new record service
func NewRecordService(db *sqlx.DB) *RecordService {
	return &RecordService{db: db}
}

// ListAll fetches every record in the collection, newest first
func (s *RecordService) ListAll() ([]model.DengueRecord, error) {
	records := []model.DengueRecord{}
	err := s.db.Select(&records, `
        SELECT id, location, cases, deaths, date, region, year, created_at, updated_at
        FROM dengue_records
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, &model.StoreError{Op: "list", Err: err}
	}
	return records, nil
}

// Get fetches a single record by ID
func (s *RecordService) Get(id int) (*model.DengueRecord, error) {
	var rec model.DengueRecord
	err := s.db.Get(&rec, `
        SELECT id, location, cases, deaths, date, region, year, created_at, updated_at
        FROM dengue_records
        WHERE id = $1
    `, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, &model.StoreError{Op: "get", Err: err}
	}
	return &rec, nil
}

// Create inserts a record and returns its assigned ID. The caller is
// expected to have validated the fields already (model.BuildRecord).
func (s *RecordService) Create(rec model.DengueRecord) (int, error) {
	var id int
	err := s.db.QueryRow(`
        INSERT INTO dengue_records (location, cases, deaths, date, region, year, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id
    `, rec.Location, rec.Cases, rec.Deaths, rec.Date, rec.Region, rec.Year).Scan(&id)
	if err != nil {
		return 0, &model.StoreError{Op: "create", Err: err}
	}
	return id, nil
}

// Update replaces the five editable fields of a record. The year column is
// left untouched; the edit flow never carries it.
func (s *RecordService) Update(id int, rec model.DengueRecord) error {
	res, err := s.db.Exec(`
        UPDATE dengue_records
        SET location = $1, cases = $2, deaths = $3, date = $4, region = $5, updated_at = NOW()
        WHERE id = $6
    `, rec.Location, rec.Cases, rec.Deaths, rec.Date, rec.Region, id)
	if err != nil {
		return &model.StoreError{Op: "update", Err: err}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return &model.StoreError{Op: "update", Err: err}
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by ID
func (s *RecordService) Delete(id int) error {
	res, err := s.db.Exec("DELETE FROM dengue_records WHERE id = $1", id)
	if err != nil {
		return &model.StoreError{Op: "delete", Err: err}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return &model.StoreError{Op: "delete", Err: err}
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// GetRegions fetches the active reporting zones for the filter dropdown
func (s *RecordService) GetRegions() ([]model.Region, error) {
	var regions []model.Region
	err := s.db.Select(&regions, "SELECT code, name, is_active FROM regions WHERE is_active = TRUE ORDER BY name")
	if err != nil {
		return nil, &model.StoreError{Op: "list", Err: err}
	}
	return regions, nil
}
