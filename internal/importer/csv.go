package importer

import (
	"encoding/csv"
	"io"
	"log"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"dengue-tracker-go/pkg/model"
)

// Expected CSV columns, matched case-sensitively against the header row
var requiredColumns = []string{"loc", "cases", "deaths", "date", "Region", "year"}

// RecordStore is the slice of the record service the importer needs
type RecordStore interface {
	Create(rec model.DengueRecord) (int, error)
}

// Importer bulk-loads dengue records from CSV files
type Importer struct {
	store RecordStore
}

// NewImporter creates a new CSV importer
func NewImporter(store RecordStore) *Importer {
	return &Importer{store: store}
}

// Import parses a CSV stream and creates one record per valid row. Rows
// missing a required column are skipped with a warning; the batch goes on.
// Valid rows are dispatched as concurrent creates with no ordering
// guarantee, and Import returns only after every dispatched create has
// settled. A failed create fails the import, but rows already created stay
// put: there is no rollback, so partial imports are possible.
//
// The first data row after the header is discarded before any validation,
// matching the behavior of the upload flow this replaces.
func (im *Importer) Import(r io.Reader) (model.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; validation happens per column

	rows, err := reader.ReadAll()
	if err != nil {
		return model.ImportResult{}, &model.ParseError{Err: err}
	}
	if len(rows) == 0 {
		return model.ImportResult{}, &model.ParseError{Err: io.ErrUnexpectedEOF}
	}

	header := rows[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return model.ImportResult{}, &model.ParseError{Err: &model.ValidationError{Field: name, Reason: "column missing from header"}}
		}
	}

	// Header is row 1; the first data row (row 2) is dropped.
	data := rows[1:]
	if len(data) > 0 {
		data = data[1:]
	}

	result := model.ImportResult{}
	var created int64
	var group errgroup.Group

	for i, row := range data {
		rowNum := i + 3 // 1-based file row, after header and the dropped row

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		rec, err := model.BuildRecord(field("loc"), field("cases"), field("deaths"), field("date"), field("Region"))
		if err != nil {
			log.Printf("Skipping CSV row %d: %v", rowNum, err)
			result.Skipped++
			result.SkippedRows = append(result.SkippedRows, rowNum)
			continue
		}

		year, err := strconv.Atoi(field("year"))
		if err != nil {
			log.Printf("Skipping CSV row %d: invalid year: %q", rowNum, field("year"))
			result.Skipped++
			result.SkippedRows = append(result.SkippedRows, rowNum)
			continue
		}
		rec.Year = &year

		group.Go(func() error {
			if _, err := im.store.Create(rec); err != nil {
				return err
			}
			atomic.AddInt64(&created, 1)
			return nil
		})
	}

	err = group.Wait()
	result.Created = int(atomic.LoadInt64(&created))
	return result, err
}
