package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metalshop/internal/infrastructure/auth"
	"metalshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type stubValidator struct {
	claims *auth.Claims
	err    error
	got    string
}

func (s *stubValidator) ValidateToken(token string) (*auth.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(v TokenValidator) (*gin.Engine, *usecase.Actor) {
		var seen usecase.Actor
		r := gin.New()
		r.Use(Auth(v))
		r.GET("/v1/jobs", func(c *gin.Context) {
			seen = usecase.ActorFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
		return r, &seen
	}

	t.Run("missing header", func(t *testing.T) {
		r, _ := newRouter(&stubValidator{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected error envelope, got %s", w.Body.String())
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r, _ := newRouter(&stubValidator{})
		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r, _ := newRouter(&stubValidator{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token sets the actor", func(t *testing.T) {
		v := &stubValidator{claims: &auth.Claims{UserID: "u-1", Username: "admin", Role: "admin"}}
		r, seen := newRouter(v)
		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		req.Header.Set("Authorization", "bearer  signed-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if v.got != "signed-token" {
			t.Fatalf("expected trimmed token, got %q", v.got)
		}
		if seen.UserID != "u-1" || seen.Username != "admin" {
			t.Fatalf("unexpected actor: %+v", *seen)
		}
	})
}

func TestAuth_WithTokenManager(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tm, err := auth.NewTokenManager("test-key", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, _, err := tm.GenerateToken("u-9", "ops", "operator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := gin.New()
	r.Use(Auth(tm))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserRole))
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "operator" {
		t.Fatalf("expected 200 operator, got %d %q", w.Code, w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected json body, got %v", err)
	}
	if body.Success || body.Error.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("configured origin", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"https://app.example.com"}))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Fatalf("expected origin echoed, got %q", got)
		}
	})

	t.Run("wildcard", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"*"}))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("expected *, got %q", got)
		}
	})
}
