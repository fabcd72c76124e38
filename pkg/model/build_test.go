package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecord(t *testing.T) {
	rec, err := BuildRecord("Downtown", "10", "1", "2024-01-01", "region1")

	require.NoError(t, err)
	assert.Equal(t, "Downtown", rec.Location)
	assert.Equal(t, 10, rec.Cases)
	assert.Equal(t, 1, rec.Deaths)
	assert.Equal(t, "2024-01-01", rec.Date)
	assert.Equal(t, "region1", rec.Region)
	assert.Nil(t, rec.Year)
}

func TestBuildRecordMissingFields(t *testing.T) {
	cases := []struct {
		name                                  string
		location, cases, deaths, date, region string
		wantField                             string
	}{
		{"location", "", "1", "1", "2024-01-01", "region1", "location"},
		{"cases", "A", "", "1", "2024-01-01", "region1", "cases"},
		{"deaths", "A", "1", "", "2024-01-01", "region1", "deaths"},
		{"date", "A", "1", "1", "", "region1", "date"},
		{"region", "A", "1", "1", "2024-01-01", "", "region"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildRecord(tc.location, tc.cases, tc.deaths, tc.date, tc.region)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestBuildRecordNonNumericCounts(t *testing.T) {
	_, err := BuildRecord("A", "ten", "1", "2024-01-01", "region1")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "cases", validationErr.Field)

	_, err = BuildRecord("A", "10", "1.5", "2024-01-01", "region1")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "deaths", validationErr.Field)
}

func TestBuildRecordDoesNotRelateDeathsToCases(t *testing.T) {
	rec, err := BuildRecord("A", "1", "5", "2024-01-01", "region1")

	require.NoError(t, err)
	assert.Greater(t, rec.Deaths, rec.Cases)
}
