package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"metalshop/internal/adapter/http/handlers/mocks"
	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkerUseCase(ctrl)
		h := NewWorkerHandler(uc)

		r := gin.New()
		r.GET("/v1/workers", h.ListWorkers)

		uc.EXPECT().List(gomock.Any(), gomock.AssignableToTypeOf(usecase.WorkerQuery{})).DoAndReturn(
			func(_ context.Context, q usecase.WorkerQuery) ([]entities.Worker, error) {
				if q.IsActive == nil || *q.IsActive || q.Search != "ali" {
					t.Fatalf("unexpected query: %+v", q)
				}
				return []entities.Worker{{ID: "w-1"}}, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/workers?is_active=false&search=ali", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad active flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkerHandler(mocks.NewMockIWorkerUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/workers", h.ListWorkers)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/workers?is_active=maybe", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create requires first name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkerHandler(mocks.NewMockIWorkerUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/workers", h.CreateWorker)

		req := httptest.NewRequest(http.MethodPost, "/v1/workers", bytes.NewBufferString(`{"role_type":"Master"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("hard delete of a used worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkerUseCase(ctrl)
		h := NewWorkerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/workers/:id", h.DeleteWorker)

		uc.EXPECT().HardDelete(gomock.Any(), "w-1").Return(usecase.ErrWorkerHasEntries)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/workers/w-1", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("archive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkerUseCase(ctrl)
		h := NewWorkerHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workers/:id/archive", h.ArchiveWorker)

		uc.EXPECT().Archive(gomock.Any(), "w-1").Return(entities.Worker{ID: "w-1", IsActive: false}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/workers/w-1/archive", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("statement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkerUseCase(ctrl)
		h := NewWorkerHandler(uc)

		r := gin.New()
		r.GET("/v1/workers/:id/statement", h.GetWorkerStatement)

		uc.EXPECT().Statement(gomock.Any(), "w-9").Return(usecase.WorkerStatement{}, usecase.ErrWorkerNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/workers/w-9/statement", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSupplierHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation reason is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.POST("/v1/suppliers", h.CreateSupplier)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supplier{}, &usecase.ValidationError{Sentinel: usecase.ErrInvalidSupplier, Reason: "email is not valid"})

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"name":"Demir AS","email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Error == nil || env.Error.Message != "email is not valid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("active list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.GET("/v1/suppliers/active", h.ListActiveSuppliers)

		uc.EXPECT().ListActive(gomock.Any()).Return([]entities.Supplier{{ID: "s-1", IsActive: true}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/suppliers/active", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMaterialHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	h := NewMaterialHandler(uc)

	r := gin.New()
	r.PATCH("/v1/materials/:id/activate", h.ActivateMaterial)

	uc.EXPECT().Activate(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1", IsActive: true}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/materials/m-1/activate", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
