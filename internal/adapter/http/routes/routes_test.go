package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"metalshop/internal/adapter/http/handlers"
	"metalshop/internal/adapter/http/handlers/mocks"
	"metalshop/internal/infrastructure/auth"
	"metalshop/internal/infrastructure/metrics"
	"metalshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *auth.TokenManager, *mocks.MockIDashboardUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenManager("test-signing-key", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	dashboard := mocks.NewMockIDashboardUseCase(ctrl)
	h := Handlers{
		Jobs:      handlers.NewJobHandler(mocks.NewMockIJobUseCase(ctrl), mocks.NewMockIAuditUseCase(ctrl)),
		Dashboard: handlers.NewDashboardHandler(dashboard),
		Auth:      handlers.NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl)),
	}
	m := metrics.New("metalshop_test", prometheus.NewRegistry())

	return NewRouter(h, tokens, m, []string{"*"}), tokens, dashboard
}

func TestRouter_PublicRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, _, _ := newTestRouter(t, ctrl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathPing, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on ping, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	req := httptest.NewRequest(http.MethodGet, PathPing, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %q", w.Header().Get("Content-Encoding"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathMetrics, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on metrics, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "metalshop_test_http_requests_total") {
		t.Fatalf("expected http metrics to be exported")
	}
}

func TestRouter_V1RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, tokens, dashboard := newTestRouter(t, ctrl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathV1+PathJobs, nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token, _, err := tokens.GenerateToken("u-1", "admin", usecase.RoleAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	dashboard.EXPECT().Get(gomock.Any()).Return(usecase.Dashboard{TotalJobs: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, PathV1+PathDashboard, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}
