package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) {
		FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusOK)
	})

	t.Run("propagates incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) != "req-1" {
			t.Fatalf("expected request id echoed, got %q", w.Header().Get(HeaderRequestID))
		}
		entries := logs.FilterField(zap.String("request_id", "req-1")).All()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries with request id, got %d", len(entries))
		}
	})

	t.Run("generates request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderRequestID) == "" {
			t.Fatalf("expected generated request id")
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Run("falls back to global", func(t *testing.T) {
		if FromContext(context.Background()) != GetLogger() {
			t.Fatalf("expected global logger")
		}
	})

	t.Run("returns stored logger", func(t *testing.T) {
		l := zap.NewExample()
		if FromContext(WithContext(context.Background(), l)) != l {
			t.Fatalf("expected stored logger")
		}
	})
}

func TestInitLogger(t *testing.T) {
	defer SetLogger(nil)
	if err := InitLogger(&LogConfig{Level: "debug", Environment: "production", ServiceName: "metalshop"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level enabled")
	}
}
