package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

type LaborEntryHandler struct {
	usecase usecase.ILaborEntryUseCase
}

func NewLaborEntryHandler(uc usecase.ILaborEntryUseCase) *LaborEntryHandler {
	return &LaborEntryHandler{usecase: uc}
}

// CreateLaborEntry godoc
// @Summary  Record worked hours on a job
// @Tags     labor
// @Accept   json
// @Produce  json
// @Param    id     path      string                     true  "Job ID"
// @Param    entry  body      request.LaborEntryRequest  true  "Labor entry"
// @Success  201    {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/labor-entries [post]
func (h *LaborEntryHandler) CreateLaborEntry(c *gin.Context) {
	var payload request.LaborEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[labor][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(entry))
}

// ListLaborEntries godoc
// @Summary  Labor entries of a job with totals
// @Tags     labor
// @Produce  json
// @Param    id         path      string  true   "Job ID"
// @Param    worker_id  query     string  false  "Worker"
// @Param    role_type  query     string  false  "Worker role"
// @Param    from       query     string  false  "From date (YYYY-MM-DD)"
// @Param    to         query     string  false  "To date (YYYY-MM-DD)"
// @Success  200        {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/labor-entries [get]
func (h *LaborEntryHandler) ListLaborEntries(c *gin.Context) {
	from, err := request.ParseOptionalDate(c.Query("from"))
	if err != nil {
		respondBadRequest(c, errInvalidQuery, err)
		return
	}
	to, err := request.ParseOptionalDate(c.Query("to"))
	if err != nil {
		respondBadRequest(c, errInvalidQuery, err)
		return
	}

	list, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"), usecase.LaborEntryQuery{
		WorkerID: c.Query("worker_id"),
		RoleType: c.Query("role_type"),
		From:     from,
		To:       to,
	})
	if err != nil {
		respondError(c, "[labor][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(list))
}

func (h *LaborEntryHandler) GetLaborEntry(c *gin.Context) {
	entry, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[labor][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(entry))
}

// UpdateLaborEntry applies a partial update; the row total and the job's
// labor total are recomputed.
func (h *LaborEntryHandler) UpdateLaborEntry(c *gin.Context) {
	var payload request.LaborEntryPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "[labor][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(entry))
}

func (h *LaborEntryHandler) DeleteLaborEntry(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[labor][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
