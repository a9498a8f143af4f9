package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	request "metalshop/internal/adapter/http/dto/request"
	response "metalshop/internal/adapter/http/dto/response"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler serves jobs, their financial summary, the excel report and the
// audit history.
type JobHandler struct {
	usecase usecase.IJobUseCase
	audit   usecase.IAuditUseCase
}

func NewJobHandler(uc usecase.IJobUseCase, audit usecase.IAuditUseCase) *JobHandler {
	return &JobHandler{usecase: uc, audit: audit}
}

// CreateJob godoc
// @Summary  Create a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    job  body      request.JobRequest  true  "Job"
// @Success  201  {object}  pkg.Envelope
// @Failure  400  {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "[job][handler] create", err)
		return
	}
	logger.FromGin(c).Info("[job][handler] created", zap.String("job_id", job.ID), zap.String("reference_code", job.ReferenceCode))

	c.JSON(http.StatusCreated, pkg.Success(response.FromJob(job)))
}

// ListJobs godoc
// @Summary  List jobs
// @Tags     jobs
// @Produce  json
// @Param    status    query     string  false  "Status"
// @Param    priority  query     string  false  "Priority"
// @Param    search    query     string  false  "Reference, title or customer"
// @Success  200       {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context(), c.Query("status"), c.Query("priority"), c.Query("search"))
	if err != nil {
		respondError(c, "[job][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromJobs(jobs)))
}

// GetJob godoc
// @Summary  Get a job
// @Tags     jobs
// @Produce  json
// @Param    id   path      string  true  "Job ID"
// @Success  200  {object}  pkg.Envelope
// @Failure  404  {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[job][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromJob(job)))
}

// UpdateJob godoc
// @Summary  Replace the descriptive fields of a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id   path      string              true  "Job ID"
// @Param    job  body      request.JobRequest  true  "Job"
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, "[job][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromJob(job)))
}

// UpdateJobStatus godoc
// @Summary  Change the status of a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Job ID"
// @Param    status  body      request.StatusRequest  true  "Status"
// @Success  200     {object}  pkg.Envelope
// @Failure  409     {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	job, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, "[job][handler] update-status", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromJob(job)))
}

// DeleteJob godoc
// @Summary  Delete a job with everything recorded under it
// @Tags     jobs
// @Produce  json
// @Param    id   path      string  true  "Job ID"
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[job][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}

// GetJobSummary godoc
// @Summary  Financial summary of a job
// @Tags     jobs
// @Produce  json
// @Param    id   path      string  true  "Job ID"
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/summary [get]
func (h *JobHandler) GetJobSummary(c *gin.Context) {
	detail, err := h.usecase.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[job][handler] summary", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(detail))
}

// ExportJobReport godoc
// @Summary  Download the job report workbook
// @Tags     jobs
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id   path  string  true  "Job ID"
// @Success  200  {file}  binary
// @Security Bearer
// @Router   /jobs/{id}/report [get]
func (h *JobHandler) ExportJobReport(c *gin.Context) {
	report, err := h.usecase.ExportReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[job][handler] export", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.FileName))
	c.Data(http.StatusOK, report.ContentType, report.Content)
}

// ListJobAudit godoc
// @Summary  Change history of a job, newest first
// @Tags     jobs
// @Produce  json
// @Param    id     path      string  true   "Job ID"
// @Param    limit  query     int     false  "Max entries (default 100)"
// @Success  200    {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/audit [get]
func (h *JobHandler) ListJobAudit(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondBadRequest(c, errInvalidQuery, fmt.Errorf("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.audit.ListByJob(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, "[job][handler] audit", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(entries))
}
