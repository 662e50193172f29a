package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLogin(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveLogin("success")
	m.ObserveLogin("failure")
	m.ObserveLogin("failure")

	expected := `
# HELP inventory_auth_logins_total Login attempts by result
# TYPE inventory_auth_logins_total counter
inventory_auth_logins_total{result="failure"} 2
inventory_auth_logins_total{result="success"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.AuthLoginsTotal, strings.NewReader(expected)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLogin("success")
		m.ObserveRejection("missing_token")
	})
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveRejection("invalid_token")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `inventory_auth_rejections_total{reason="invalid_token"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
