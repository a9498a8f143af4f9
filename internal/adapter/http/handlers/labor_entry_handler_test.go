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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLaborEntryHandler_CreateLaborEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewLaborEntryHandler(mocks.NewMockILaborEntryUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/jobs/:id/labor-entries", h.CreateLaborEntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/labor-entries", bytes.NewBufferString(`{"worker_id":"w-1","work_date":"10.03.2026","hours":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("archived worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborEntryUseCase(ctrl)
		h := NewLaborEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/labor-entries", h.CreateLaborEntry)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaborEntry{}, usecase.ErrWorkerInactive)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/labor-entries", bytes.NewBufferString(`{"worker_id":"w-1","work_date":"2026-03-10","hours":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborEntryUseCase(ctrl)
		h := NewLaborEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/labor-entries", h.CreateLaborEntry)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.LaborEntryInput{})).DoAndReturn(
			func(_ context.Context, in usecase.LaborEntryInput) (entities.LaborEntry, error) {
				if in.JobID != "job-1" || !in.Hours.Equal(decimal.RequireFromString("2.5")) || in.HourlyRate != nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.LaborEntry{ID: "le-1", JobID: "job-1", TotalAmount: decimal.RequireFromString("625")}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/labor-entries", bytes.NewBufferString(`{"worker_id":"w-1","work_date":"2026-03-10","hours":"2.5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestLaborEntryHandler_ListLaborEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad from", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewLaborEntryHandler(mocks.NewMockILaborEntryUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/jobs/:id/labor-entries", h.ListLaborEntries)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/labor-entries?from=yesterday", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters are passed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborEntryUseCase(ctrl)
		h := NewLaborEntryHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id/labor-entries", h.ListLaborEntries)

		uc.EXPECT().ListByJob(gomock.Any(), "job-1", gomock.AssignableToTypeOf(usecase.LaborEntryQuery{})).DoAndReturn(
			func(_ context.Context, _ string, q usecase.LaborEntryQuery) (usecase.LaborEntryList, error) {
				if q.WorkerID != "w-1" || q.RoleType != "Master" || q.From == nil || q.To != nil {
					t.Fatalf("unexpected query: %+v", q)
				}
				return usecase.LaborEntryList{}, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/labor-entries?worker_id=w-1&role_type=Master&from=2026-03-01", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLaborEntryHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborEntryUseCase(ctrl)
		h := NewLaborEntryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/labor-entries/:id", h.UpdateLaborEntry)

		uc.EXPECT().Update(gomock.Any(), "le-1", gomock.AssignableToTypeOf(usecase.LaborEntryPatch{})).DoAndReturn(
			func(_ context.Context, _ string, p usecase.LaborEntryPatch) (entities.LaborEntry, error) {
				if p.Hours == nil || p.WorkerID != nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.LaborEntry{ID: "le-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/labor-entries/le-1", bytes.NewBufferString(`{"hours":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborEntryUseCase(ctrl)
		h := NewLaborEntryHandler(uc)

		r := gin.New()
		r.DELETE("/v1/labor-entries/:id", h.DeleteLaborEntry)

		uc.EXPECT().Delete(gomock.Any(), "le-9").Return(usecase.ErrLaborEntryNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/labor-entries/le-9", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMaterialPurchaseHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewMaterialPurchaseHandler(mocks.NewMockIMaterialPurchaseUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/jobs/:id/material-purchases", h.CreateMaterialPurchase)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/material-purchases", bytes.NewBufferString(`{"material_name":"Profile","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialPurchaseUseCase(ctrl)
		h := NewMaterialPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/material-purchases", h.CreateMaterialPurchase)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.MaterialPurchaseInput{})).DoAndReturn(
			func(_ context.Context, in usecase.MaterialPurchaseInput) (entities.MaterialPurchase, error) {
				if in.SupplierID != "s-1" || in.VatRate == nil || !in.VatRate.Equal(decimal.NewFromInt(20)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.MaterialPurchase{ID: "mp-1", TotalAmount: decimal.RequireFromString("1200")}, nil
			},
		)

		body := `{"supplier_id":"s-1","material_name":"Profile","quantity":10,"unit_price":100,"vat_rate":20}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/material-purchases", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("archived supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialPurchaseUseCase(ctrl)
		h := NewMaterialPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/material-purchases", h.CreateMaterialPurchase)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.MaterialPurchase{}, usecase.ErrSupplierInactive)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/material-purchases", bytes.NewBufferString(`{"supplier_id":"s-1","material_name":"Profile","quantity":1,"unit_price":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
