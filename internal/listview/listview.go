package listview

import (
	"sort"
	"strconv"
	"strings"

	"dengue-tracker-go/pkg/model"
)

// Sort columns accepted by ToggleSort and DeriveView
const (
	SortByLocation = "location"
	SortByCases    = "cases"
	SortByDeaths   = "deaths"
	SortByDate     = "date"
	SortByRegion   = "region"
)

// Sort directions
const (
	Ascending  = "asc"
	Descending = "desc"
)

// RecordStore is the slice of the record service the controller needs
type RecordStore interface {
	ListAll() ([]model.DengueRecord, error)
	Update(id int, rec model.DengueRecord) error
	Delete(id int) error
}

// EditBuffer holds the draft values of the record under edit. Counts stay
// strings until commit, mirroring what the edit form sends.
type EditBuffer struct {
	Location string
	Cases    string
	Deaths   string
	Date     string
	Region   string
}

// ViewState is the user-adjustable state of the record table
type ViewState struct {
	SearchTerm     string
	SelectedRegion string
	SortKey        string
	SortDir        string
	EditingID      int // 0 when no edit is active
	EditBuffer     EditBuffer
}

// Controller owns the in-memory working set of records plus the view state,
// and recomputes the derived view on demand. It is not safe for concurrent
// use; each browser session drives one controller from a single goroutine.
type Controller struct {
	store      RecordStore
	allRecords []model.DengueRecord
	state      ViewState
}

// NewController creates a controller with the default view state:
// no filters, sorted by location ascending, no active edit.
func NewController(store RecordStore) *Controller {
	return &Controller{
		store: store,
		state: ViewState{SortKey: SortByLocation, SortDir: Ascending},
	}
}

// Refresh re-fetches the full record set from the store
func (c *Controller) Refresh() error {
	records, err := c.store.ListAll()
	if err != nil {
		return err
	}
	c.allRecords = records
	return nil
}

// Records returns the last fetched full record set
func (c *Controller) Records() []model.DengueRecord {
	return c.allRecords
}

// State returns the current view state
func (c *Controller) State() ViewState {
	return c.state
}

// SetSearchTerm replaces the location search filter
func (c *Controller) SetSearchTerm(term string) {
	c.state.SearchTerm = term
}

// SetSelectedRegion replaces the region filter; empty means no filter
func (c *Controller) SetSelectedRegion(region string) {
	c.state.SelectedRegion = region
}

// ToggleSort switches sorting to the given column. Toggling the already
// active column flips the direction; a new column starts ascending.
func (c *Controller) ToggleSort(column string) {
	if c.state.SortKey == column {
		if c.state.SortDir == Ascending {
			c.state.SortDir = Descending
		} else {
			c.state.SortDir = Ascending
		}
		return
	}
	c.state.SortKey = column
	c.state.SortDir = Ascending
}

// DeriveView recomputes the filtered, sorted view of the working set
func (c *Controller) DeriveView() []model.DengueRecord {
	return DeriveView(c.state, c.allRecords)
}

// Regions returns the distinct raw region values of the full working set
// (not the filtered view), sorted ascending, for the filter dropdown.
func (c *Controller) Regions() []string {
	seen := map[string]bool{}
	regions := []string{}
	for _, rec := range c.allRecords {
		if !seen[rec.Region] {
			seen[rec.Region] = true
			regions = append(regions, rec.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// BeginEdit marks a record as under edit and seeds the draft buffer from
// its current values. Any unsaved prior edit is discarded.
func (c *Controller) BeginEdit(rec model.DengueRecord) {
	c.state.EditingID = rec.ID
	c.state.EditBuffer = NewEditBuffer(rec)
}

// SetEditBuffer replaces the draft values of the active edit
func (c *Controller) SetEditBuffer(buf EditBuffer) {
	c.state.EditBuffer = buf
}

// CommitEdit validates the draft, persists it, and folds the result back
// into the working set. On any failure the edit state is left untouched so
// the operator can correct and retry.
func (c *Controller) CommitEdit() error {
	buf := c.state.EditBuffer
	rec, err := model.BuildRecord(buf.Location, buf.Cases, buf.Deaths, buf.Date, buf.Region)
	if err != nil {
		return err
	}

	id := c.state.EditingID
	if err := c.store.Update(id, rec); err != nil {
		return err
	}

	for i := range c.allRecords {
		if c.allRecords[i].ID == id {
			rec.ID = id
			rec.Year = c.allRecords[i].Year
			rec.CreatedAt = c.allRecords[i].CreatedAt
			c.allRecords[i] = rec
			break
		}
	}

	c.state.EditingID = 0
	c.state.EditBuffer = EditBuffer{}
	return nil
}

// CancelEdit discards the draft without persisting
func (c *Controller) CancelEdit() {
	c.state.EditingID = 0
	c.state.EditBuffer = EditBuffer{}
}

// DeleteRecord removes a record from the store and, on success, from the
// working set. On failure the working set is unchanged.
func (c *Controller) DeleteRecord(id int) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}

	kept := c.allRecords[:0]
	for _, rec := range c.allRecords {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	c.allRecords = kept
	return nil
}

// NewEditBuffer seeds a draft buffer from a record's current values
func NewEditBuffer(rec model.DengueRecord) EditBuffer {
	return EditBuffer{
		Location: rec.Location,
		Cases:    strconv.Itoa(rec.Cases),
		Deaths:   strconv.Itoa(rec.Deaths),
		Date:     rec.Date,
		Region:   rec.Region,
	}
}

// DeriveView filters records by the active search term (location contains,
// case-insensitive) and region (equals, case-insensitive), then stable-sorts
// by the active column. The input slice is not mutated.
func DeriveView(state ViewState, records []model.DengueRecord) []model.DengueRecord {
	view := make([]model.DengueRecord, 0, len(records))
	search := strings.ToLower(state.SearchTerm)
	region := strings.ToLower(state.SelectedRegion)
	for _, rec := range records {
		if search != "" && !strings.Contains(strings.ToLower(rec.Location), search) {
			continue
		}
		if region != "" && strings.ToLower(rec.Region) != region {
			continue
		}
		view = append(view, rec)
	}

	sort.SliceStable(view, func(i, j int) bool {
		cmp := compareBy(state.SortKey, view[i], view[j])
		if state.SortDir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return view
}

func compareBy(key string, a, b model.DengueRecord) int {
	switch key {
	case SortByCases:
		return a.Cases - b.Cases
	case SortByDeaths:
		return a.Deaths - b.Deaths
	case SortByDate:
		return strings.Compare(a.Date, b.Date)
	case SortByRegion:
		return strings.Compare(a.Region, b.Region)
	default:
		return strings.Compare(a.Location, b.Location)
	}
}
