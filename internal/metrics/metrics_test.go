package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/v1/notes/{id}", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/notes/{id}", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `notes_api_http_requests_total{method="GET",route="/api/v1/notes/{id}",status="200"} 2`)
	assert.Contains(t, body, `notes_api_http_requests_total{method="GET",route="unknown",status="404"} 1`)
	assert.Contains(t, body, `notes_api_http_request_duration_seconds_count{method="GET",route="/api/v1/notes/{id}"} 2`)
}

func TestHandler_IncludesRuntimeCollectors(t *testing.T) {
	body := scrape(t, New())
	assert.Contains(t, body, "go_goroutines")
}

func TestNew_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRequest(http.MethodDelete, "/notes/{id}", http.StatusOK, time.Millisecond)

	assert.NotContains(t, scrape(t, b), `route="/notes/{id}"`)
}
