package chart

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dengue-tracker-go/pkg/model"
)

func sampleRecords() []model.DengueRecord {
	return []model.DengueRecord{
		{Location: "A", Cases: 10, Deaths: 1, Date: "2024-01-01", Region: "region1"},
		{Location: "B", Cases: 5, Deaths: 0, Date: "2024-01-01", Region: "region2"},
	}
}

func TestCasesByRegion(t *testing.T) {
	got := CasesByRegion(sampleRecords())

	assert.Equal(t, []string{"North Zone", "South Zone"}, got.Labels)
	assert.Equal(t, []int{10, 5}, got.Values)
}

func TestCasesByRegionUnknownCodePassesThrough(t *testing.T) {
	records := []model.DengueRecord{
		{Location: "A", Cases: 3, Date: "2024-01-01", Region: "uptown"},
		{Location: "B", Cases: 4, Date: "2024-01-02", Region: "region3"},
	}

	got := CasesByRegion(records)

	assert.Equal(t, []string{"uptown", "East Zone"}, got.Labels)
	assert.Equal(t, []int{3, 4}, got.Values)
}

func TestCasesByRegionFirstSeenOrder(t *testing.T) {
	records := []model.DengueRecord{
		{Cases: 1, Date: "2024-01-01", Region: "region4"},
		{Cases: 2, Date: "2024-01-01", Region: "region1"},
		{Cases: 3, Date: "2024-01-01", Region: "region4"},
	}

	got := CasesByRegion(records)

	assert.Equal(t, []string{"West Zone", "North Zone"}, got.Labels)
	assert.Equal(t, []int{4, 2}, got.Values)
}

func TestCasesByRegionPreservesTotal(t *testing.T) {
	records := []model.DengueRecord{
		{Cases: 7, Region: "region1"},
		{Cases: 11, Region: "region2"},
		{Cases: 13, Region: "elsewhere"},
		{Cases: 17, Region: "region1"},
	}

	got := CasesByRegion(records)

	total := 0
	for _, v := range got.Values {
		total += v
	}
	assert.Equal(t, 7+11+13+17, total)
}

// A dataset holding both a code and its display name as distinct raw region
// values produces two buckets with the same label, and every matching
// record is counted in both. That is the matching policy the charts have
// always had; this pins it down rather than endorsing it.
func TestCasesByRegionMixedCodeAndNameDoubleCounts(t *testing.T) {
	records := []model.DengueRecord{
		{Cases: 10, Region: "region1"},
		{Cases: 5, Region: "North Zone"},
	}

	got := CasesByRegion(records)

	require.Equal(t, []string{"North Zone", "North Zone"}, got.Labels)
	assert.Equal(t, []int{15, 15}, got.Values)
}

func TestCasesByDate(t *testing.T) {
	got := CasesByDate(sampleRecords())

	assert.Equal(t, []string{"2024-01-01"}, got.Dates)
	assert.Equal(t, []int{15}, got.Values)
}

func TestCasesByDateSortedDistinctAxis(t *testing.T) {
	records := []model.DengueRecord{
		{Cases: 1, Date: "2024-03-01"},
		{Cases: 2, Date: "2024-01-15"},
		{Cases: 3, Date: "2024-03-01"},
		{Cases: 4, Date: "2023-12-31"},
	}

	got := CasesByDate(records)

	require.Equal(t, []string{"2023-12-31", "2024-01-15", "2024-03-01"}, got.Dates)
	assert.True(t, sort.StringsAreSorted(got.Dates))
	assert.Equal(t, []int{4, 2, 4}, got.Values)
}

func TestDeathsByDateSharesAxisWithCases(t *testing.T) {
	records := []model.DengueRecord{
		{Cases: 1, Deaths: 1, Date: "2024-02-01"},
		{Cases: 2, Deaths: 0, Date: "2024-01-01"},
		{Cases: 3, Deaths: 2, Date: "2024-02-01"},
	}

	cases := CasesByDate(records)
	deaths := DeathsByDate(records)

	assert.Equal(t, cases.Dates, deaths.Dates)
	assert.Equal(t, []int{0, 3}, deaths.Values)
}

func TestCasesDeathsPairs(t *testing.T) {
	records := []model.DengueRecord{
		{Cases: 10, Deaths: 1},
		{Cases: 0, Deaths: 3}, // deaths > cases is not rejected anywhere
		{Cases: 10, Deaths: 1},
	}

	got := CasesDeathsPairs(records)

	require.Len(t, got, len(records))
	assert.Equal(t, Point{X: 10, Y: 1}, got[0])
	assert.Equal(t, Point{X: 0, Y: 3}, got[1])
	assert.Equal(t, Point{X: 10, Y: 1}, got[2])
}

func TestEmptyInput(t *testing.T) {
	byRegion := CasesByRegion(nil)
	assert.Empty(t, byRegion.Labels)
	assert.Empty(t, byRegion.Values)

	byDate := CasesByDate(nil)
	assert.Empty(t, byDate.Dates)
	assert.Empty(t, byDate.Values)

	assert.Empty(t, CasesDeathsPairs(nil))
}

func TestProjectionsAreIdempotent(t *testing.T) {
	records := sampleRecords()

	first := CasesByRegion(records)
	second := CasesByRegion(records)
	assert.Equal(t, first, second)

	assert.Equal(t, CasesByDate(records), CasesByDate(records))
	assert.Equal(t, DeathsByDate(records), DeathsByDate(records))
	assert.Equal(t, CasesDeathsPairs(records), CasesDeathsPairs(records))

	// Input slice untouched
	assert.Equal(t, sampleRecords(), records)
}

func TestRegionDisplayName(t *testing.T) {
	assert.Equal(t, "North Zone", RegionDisplayName("region1"))
	assert.Equal(t, "West Zone", RegionDisplayName("region4"))
	assert.Equal(t, "riverside", RegionDisplayName("riverside"))
}
