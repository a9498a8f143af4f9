package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("middleware counts by route template", func(t *testing.T) {
		m := New("test", prometheus.NewRegistry())
		r := gin.New()
		r.Use(m.Middleware())
		r.GET("/v1/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, id := range []string{"a", "b"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/"+id, nil))
		}

		got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/jobs/:id", "200"))
		if got != 2 {
			t.Fatalf("expected 2 requests, got %v", got)
		}
	})

	t.Run("domain and auth counters", func(t *testing.T) {
		m := New("test", prometheus.NewRegistry())
		m.RecordOperation("labor_entry", "create")
		m.RecordAuthAttempt(false)
		m.RecordAuthAttempt(true)
		m.TrackCostRecompute("labor")()

		if v := testutil.ToFloat64(m.DomainOperations.WithLabelValues("labor_entry", "create")); v != 1 {
			t.Fatalf("expected 1 operation, got %v", v)
		}
		if v := testutil.ToFloat64(m.AuthAttempts.WithLabelValues("failure")); v != 1 {
			t.Fatalf("expected 1 failure, got %v", v)
		}
	})

	t.Run("nil metrics are safe", func(t *testing.T) {
		var m *Metrics
		m.RecordOperation("job", "create")
		m.RecordAuthAttempt(true)
		m.TrackCostRecompute("material")()
	})

	t.Run("handler exposes collectors", func(t *testing.T) {
		m := New("exposed", prometheus.NewRegistry())
		m.RecordOperation("job", "create")

		w := httptest.NewRecorder()
		m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if !strings.Contains(w.Body.String(), "exposed_domain_operations_total") {
			t.Fatalf("expected metric in output: %s", w.Body.String())
		}
	})
}
