package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

// parseActiveFilter reads the optional is_active query flag.
func parseActiveFilter(c *gin.Context) (*bool, error) {
	raw := c.Query("is_active")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("is_active must be true or false")
	}
	return &v, nil
}

type WorkerHandler struct {
	usecase usecase.IWorkerUseCase
}

func NewWorkerHandler(uc usecase.IWorkerUseCase) *WorkerHandler {
	return &WorkerHandler{usecase: uc}
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var payload request.WorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}
	w, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "[worker][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(w))
}

func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	var payload request.WorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}
	w, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, "[worker][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(w))
}

func (h *WorkerHandler) GetWorker(c *gin.Context) {
	w, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[worker][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(w))
}

func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	active, err := parseActiveFilter(c)
	if err != nil {
		respondBadRequest(c, errInvalidQuery, err)
		return
	}
	workers, err := h.usecase.List(c.Request.Context(), usecase.WorkerQuery{
		IsActive: active,
		Search:   c.Query("search"),
		RoleType: c.Query("role_type"),
	})
	if err != nil {
		respondError(c, "[worker][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(workers))
}

// ListActiveWorkers feeds the worker pickers of the labor entry form.
func (h *WorkerHandler) ListActiveWorkers(c *gin.Context) {
	workers, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, "[worker][handler] list-active", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(workers))
}

func (h *WorkerHandler) ArchiveWorker(c *gin.Context) {
	w, err := h.usecase.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[worker][handler] archive", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(w))
}

func (h *WorkerHandler) ActivateWorker(c *gin.Context) {
	w, err := h.usecase.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[worker][handler] activate", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(w))
}

// DeleteWorker erases a worker that never worked or got paid. Used workers
// answer 409 and must be archived instead.
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	if err := h.usecase.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[worker][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}

func (h *WorkerHandler) GetWorkerStatement(c *gin.Context) {
	st, err := h.usecase.Statement(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[worker][handler] statement", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(st))
}

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}
	s, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "[supplier][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(s))
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}
	s, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, "[supplier][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(s))
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[supplier][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(s))
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	active, err := parseActiveFilter(c)
	if err != nil {
		respondBadRequest(c, errInvalidQuery, err)
		return
	}
	suppliers, err := h.usecase.List(c.Request.Context(), usecase.CatalogQuery{IsActive: active, Search: c.Query("search")})
	if err != nil {
		respondError(c, "[supplier][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(suppliers))
}

func (h *SupplierHandler) ListActiveSuppliers(c *gin.Context) {
	suppliers, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, "[supplier][handler] list-active", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(suppliers))
}

func (h *SupplierHandler) ArchiveSupplier(c *gin.Context) {
	s, err := h.usecase.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[supplier][handler] archive", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(s))
}

func (h *SupplierHandler) ActivateSupplier(c *gin.Context) {
	s, err := h.usecase.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[supplier][handler] activate", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(s))
}

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}
	m, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "[material][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(m))
}

func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}
	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, "[material][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(m))
}

func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[material][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(m))
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	active, err := parseActiveFilter(c)
	if err != nil {
		respondBadRequest(c, errInvalidQuery, err)
		return
	}
	materials, err := h.usecase.List(c.Request.Context(), usecase.CatalogQuery{IsActive: active, Search: c.Query("search")})
	if err != nil {
		respondError(c, "[material][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(materials))
}

func (h *MaterialHandler) ListActiveMaterials(c *gin.Context) {
	materials, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, "[material][handler] list-active", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(materials))
}

func (h *MaterialHandler) ArchiveMaterial(c *gin.Context) {
	m, err := h.usecase.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[material][handler] archive", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(m))
}

func (h *MaterialHandler) ActivateMaterial(c *gin.Context) {
	m, err := h.usecase.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[material][handler] activate", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(m))
}
