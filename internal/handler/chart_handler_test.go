package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dengue-tracker-go/pkg/model"
)

type fakeRecordSource struct {
	records []model.DengueRecord
	err     error
}

func (f *fakeRecordSource) ListAll() ([]model.DengueRecord, error) {
	return f.records, f.err
}

func chartRouter(source *fakeRecordSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChartHandler(source)

	router := gin.New()
	router.GET("/api/charts/cases-by-region", h.CasesByRegion)
	router.GET("/api/charts/cases-over-time", h.CasesOverTime)
	router.GET("/api/charts/deaths-over-time", h.DeathsOverTime)
	router.GET("/api/charts/cases-vs-deaths", h.CasesVsDeaths)
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestChartEndpointsReturnProjectionShapesDirectly(t *testing.T) {
	source := &fakeRecordSource{records: []model.DengueRecord{
		{Location: "A", Cases: 10, Deaths: 1, Date: "2024-01-01", Region: "region1"},
		{Location: "B", Cases: 5, Deaths: 0, Date: "2024-01-01", Region: "region2"},
	}}
	router := chartRouter(source)

	w := get(t, router, "/api/charts/cases-by-region")
	require.Equal(t, http.StatusOK, w.Code)
	var byRegion struct {
		Labels []string `json:"labels"`
		Values []int    `json:"values"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byRegion))
	assert.Equal(t, []string{"North Zone", "South Zone"}, byRegion.Labels)
	assert.Equal(t, []int{10, 5}, byRegion.Values)

	w = get(t, router, "/api/charts/cases-over-time")
	require.Equal(t, http.StatusOK, w.Code)
	var byDate struct {
		Dates  []string `json:"dates"`
		Values []int    `json:"values"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byDate))
	assert.Equal(t, []string{"2024-01-01"}, byDate.Dates)
	assert.Equal(t, []int{15}, byDate.Values)

	w = get(t, router, "/api/charts/deaths-over-time")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byDate))
	assert.Equal(t, []int{1}, byDate.Values)

	// The scatter body is the bare point array, not an envelope object.
	w = get(t, router, "/api/charts/cases-vs-deaths")
	require.Equal(t, http.StatusOK, w.Code)
	var points []struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	require.Len(t, points, 2)
	assert.Equal(t, 10, points[0].X)
	assert.Equal(t, 1, points[0].Y)
}

func TestChartEndpointsSurfaceStoreFailure(t *testing.T) {
	source := &fakeRecordSource{err: &model.StoreError{Op: "list", Err: errors.New("timeout")}}
	router := chartRouter(source)

	for _, path := range []string{
		"/api/charts/cases-by-region",
		"/api/charts/cases-over-time",
		"/api/charts/deaths-over-time",
		"/api/charts/cases-vs-deaths",
	} {
		w := get(t, router, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
	}
}
