package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithoutChecksIsDown(t *testing.T) {
	report := NewChecker().Run(context.Background())
	assert.Equal(t, StatusDown, report.Status)
	assert.Empty(t, report.Components)
}

func TestRunAggregates(t *testing.T) {
	c := NewChecker()
	c.Register("categories", func(context.Context) error { return nil })
	c.Register("dataset", func(context.Context) error { return errors.New("not loaded") })

	report := c.Run(context.Background())
	assert.Equal(t, StatusDown, report.Status)
	assert.Equal(t, "up", report.Components["categories"])
	assert.Equal(t, "not loaded", report.Components["dataset"])

	c.Register("dataset", func(context.Context) error { return nil })
	assert.Equal(t, StatusUp, c.Run(context.Background()).Status)
}

func TestHandler(t *testing.T) {
	ready := false
	c := NewChecker()
	c.Register("dataset", func(context.Context) error {
		if !ready {
			return errors.New("not loaded")
		}
		return nil
	})

	rec := httptest.NewRecorder()
	c.Handler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ready = true
	rec = httptest.NewRecorder()
	c.Handler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, StatusUp, report.Status)
}
