package chart

import (
	"sort"

	"dengue-tracker-go/pkg/model"
)

// regionNames maps short region codes to the display names the charts use.
// Unknown codes pass through unchanged.
var regionNames = map[string]string{
	"region1": "North Zone",
	"region2": "South Zone",
	"region3": "East Zone",
	"region4": "West Zone",
}

// RegionDisplayName resolves a raw region value to its display name
func RegionDisplayName(region string) string {
	if name, ok := regionNames[region]; ok {
		return name
	}
	return region
}

// SeriesByLabel is a labelled series, one value per label
type SeriesByLabel struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// SeriesByDate is a date-keyed series over a sorted date axis
type SeriesByDate struct {
	Dates  []string `json:"dates"`
	Values []int    `json:"values"`
}

// Point is one scatter point, cases on x and deaths on y
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CasesByRegion sums cases into one bucket per distinct raw region value,
// in first-seen order, with codes mapped to display names. A record counts
// toward a bucket when its region maps to that display name or already
// equals it, so mixed code/name data still lands in one chart bar. A
// dataset that contains both a code and its display name as distinct raw
// values yields two buckets with the same label, each counting the matching
// records of both; that matching policy is kept as-is.
func CasesByRegion(records []model.DengueRecord) SeriesByLabel {
	labels := []string{}
	seen := map[string]bool{}
	for _, rec := range records {
		if !seen[rec.Region] {
			seen[rec.Region] = true
			labels = append(labels, RegionDisplayName(rec.Region))
		}
	}

	values := make([]int, len(labels))
	for i, label := range labels {
		for _, rec := range records {
			if RegionDisplayName(rec.Region) == label || rec.Region == label {
				values[i] += rec.Cases
			}
		}
	}

	return SeriesByLabel{Labels: labels, Values: values}
}

// CasesByDate sums cases per distinct date over an ascending date axis.
// Dates are ISO-8601 strings, so string order is chronological order.
func CasesByDate(records []model.DengueRecord) SeriesByDate {
	return sumByDate(records, func(rec model.DengueRecord) int { return rec.Cases })
}

// DeathsByDate sums deaths per distinct date over the same axis as CasesByDate
func DeathsByDate(records []model.DengueRecord) SeriesByDate {
	return sumByDate(records, func(rec model.DengueRecord) int { return rec.Deaths })
}

func sumByDate(records []model.DengueRecord, value func(model.DengueRecord) int) SeriesByDate {
	dates := []string{}
	seen := map[string]bool{}
	for _, rec := range records {
		if !seen[rec.Date] {
			seen[rec.Date] = true
			dates = append(dates, rec.Date)
		}
	}
	sort.Strings(dates)

	totals := make(map[string]int, len(dates))
	for _, rec := range records {
		totals[rec.Date] += value(rec)
	}

	values := make([]int, len(dates))
	for i, date := range dates {
		values[i] = totals[date]
	}

	return SeriesByDate{Dates: dates, Values: values}
}

// CasesDeathsPairs emits one point per record, in input order, values
// passed through untouched.
func CasesDeathsPairs(records []model.DengueRecord) []Point {
	points := make([]Point, len(records))
	for i, rec := range records {
		points[i] = Point{X: rec.Cases, Y: rec.Deaths}
	}
	return points
}
