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

func TestOfferHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create maps items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/offers", h.CreateOffer)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.OfferInput{})).DoAndReturn(
			func(_ context.Context, in usecase.OfferInput) (entities.Offer, error) {
				if in.JobID != "job-1" || len(in.Items) != 2 || !in.Items[1].VatRate.Equal(decimal.NewFromInt(20)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Offer{ID: "o-1", GrandTotal: decimal.RequireFromString("2900")}, nil
			},
		)

		body := `{"title":"Railing","items":[{"product_name":"Railing","quantity":10,"unit_price":250},{"product_name":"Paint","quantity":1,"unit_price":"400","vat_rate":20}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/offers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateOfferStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", "Maybe").Return(entities.Offer{}, &usecase.ValidationError{Sentinel: usecase.ErrInvalidOffer, Reason: "unknown status"})

		req := httptest.NewRequest(http.MethodPatch, "/v1/offers/o-1/status", bytes.NewBufferString(`{"status":"Maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestContractHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIContractUseCase(ctrl)
	h := NewContractHandler(uc)

	r := gin.New()
	r.DELETE("/v1/contracts/:id", h.DeleteContract)

	uc.EXPECT().Delete(gomock.Any(), "c-1").Return(usecase.ErrContractNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/contracts/c-1", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPaymentPlanHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body uses now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		h := NewPaymentPlanHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payment-plans/:id/paid", h.MarkPaymentPlanPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "pp-1", gomock.Nil()).Return(entities.PaymentPlan{ID: "pp-1", Status: entities.PaymentPlanStatusPaid}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/payment-plans/pp-1/paid", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)
		h := NewPaymentPlanHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payment-plans/:id/paid", h.MarkPaymentPlanPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "pp-1", gomock.Not(gomock.Nil())).Return(entities.PaymentPlan{}, usecase.ErrPaymentPlanAlreadyPaid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payment-plans/pp-1/paid", bytes.NewBufferString(`{"paid_at":"2026-05-02"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestFileHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFileUseCase(ctrl)
	h := NewFileHandler(uc)

	r := gin.New()
	r.POST("/v1/jobs/:id/files", h.CreateFile)

	uc.EXPECT().Create(gomock.Any(), usecase.FileInput{JobID: "job-1", FileName: "drawing.pdf", StorageKey: "jobs/1/drawing.pdf", SizeBytes: 2048}).
		Return(entities.File{ID: "f-1"}, nil)

	body := `{"file_name":"drawing.pdf","storage_key":"jobs/1/drawing.pdf","size_bytes":2048}`
	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/files", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	r := gin.New()
	r.GET("/v1/dashboard", h.GetDashboard)

	uc.EXPECT().Get(gomock.Any()).Return(usecase.Dashboard{TotalJobs: 3}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
