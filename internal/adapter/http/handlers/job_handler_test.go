package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("expected json envelope, got %q", w.Body.String())
	}
	return env
}

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, &usecase.ValidationError{Sentinel: usecase.ErrInvalidJob, Reason: "phone is required"})

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_name":"Mustafa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Success || env.Error == nil || env.Error.Message != "phone is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.JobInput{})).DoAndReturn(
			func(_ any, in usecase.JobInput) (entities.Job, error) {
				if in.CustomerName != "Mustafa" || in.StartDate == nil || len(in.Tags) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Job{ID: "job-1", ReferenceCode: "JOB-2026-0001", Status: entities.JobStatusNew}, nil
			},
		)

		body := `{"customer_name":"Mustafa","phone":"05321234567","tags":["gate"],"start_date":"2026-04-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		var job map[string]any
		_ = json.Unmarshal(env.Data, &job)
		if !env.Success || job["reference_code"] != "JOB-2026-0001" || job["progress"] != float64(10) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_UpdateJobStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), nil)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/status", h.UpdateJobStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("strict transition refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/status", h.UpdateJobStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "job-1", "Completed").Return(entities.Job{}, entities.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(`{"status":"Completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetJob)

		uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.Job{}, usecase.ErrJobNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Error == nil || env.Error.Code != "JOB_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.DELETE("/v1/jobs/:id", h.DeleteJob)

		uc.EXPECT().Delete(gomock.Any(), "job-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1", nil))

		if w.Code != http.StatusOK || !decodeEnvelope(t, w).Success {
			t.Fatalf("expected 200 success, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestJobHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/jobs/:id/summary", h.GetJobSummary)

	detail := usecase.JobDetail{Job: entities.Job{ID: "job-1", LaborCostTotal: decimal.RequireFromString("2302")}, Progress: 70}
	uc.EXPECT().Summary(gomock.Any(), "job-1").Return(detail, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/summary", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Job struct {
			LaborCostTotal string `json:"labor_cost_total"`
		} `json:"job"`
		Progress int `json:"progress"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatalf("unexpected data: %v", err)
	}
	if data.Job.LaborCostTotal != "2302" || data.Progress != 70 {
		t.Fatalf("unexpected summary: %+v", data)
	}
}

func TestJobHandler_ExportJobReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renderer missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/jobs/:id/report", h.ExportJobReport)

		uc.EXPECT().ExportReport(gomock.Any(), "job-1").Return(usecase.ReportFile{}, usecase.ErrReportRenderer)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/report", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/jobs/:id/report", h.ExportJobReport)

		uc.EXPECT().ExportReport(gomock.Any(), "job-1").Return(usecase.ReportFile{
			FileName:    "JOB-2026-0001.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK"),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/report", nil))

		if w.Code != http.StatusOK || w.Body.String() != "PK" {
			t.Fatalf("expected workbook bytes, got %d %q", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="JOB-2026-0001.xlsx"` {
			t.Fatalf("unexpected disposition %q", got)
		}
	})
}

func TestJobHandler_ListJobAudit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), mocks.NewMockIAuditUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/jobs/:id/audit", h.ListJobAudit)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/audit?limit=many", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		audit := mocks.NewMockIAuditUseCase(ctrl)
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), audit)

		r := gin.New()
		r.GET("/v1/jobs/:id/audit", h.ListJobAudit)

		audit.EXPECT().ListByJob(gomock.Any(), "job-1", 20).Return([]entities.AuditLog{{ID: "a-1", Action: entities.AuditActionUpdateStatus}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/audit?limit=20", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		audit := mocks.NewMockIAuditUseCase(ctrl)
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl), audit)

		r := gin.New()
		r.GET("/v1/jobs/:id/audit", h.ListJobAudit)

		audit.EXPECT().ListByJob(gomock.Any(), "job-1", 0).Return(nil, errors.New("dynamodb down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/audit", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
