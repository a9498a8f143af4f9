package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

type MaterialPurchaseHandler struct {
	usecase usecase.IMaterialPurchaseUseCase
}

func NewMaterialPurchaseHandler(uc usecase.IMaterialPurchaseUseCase) *MaterialPurchaseHandler {
	return &MaterialPurchaseHandler{usecase: uc}
}

func (h *MaterialPurchaseHandler) CreateMaterialPurchase(c *gin.Context) {
	var payload request.MaterialPurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	purchase, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[purchase][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(purchase))
}

func (h *MaterialPurchaseHandler) ListMaterialPurchases(c *gin.Context) {
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

	list, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"), usecase.MaterialPurchaseQuery{
		SupplierID: c.Query("supplier_id"),
		MaterialID: c.Query("material_id"),
		From:       from,
		To:         to,
	})
	if err != nil {
		respondError(c, "[purchase][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(list))
}

func (h *MaterialPurchaseHandler) GetMaterialPurchase(c *gin.Context) {
	purchase, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[purchase][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(purchase))
}

func (h *MaterialPurchaseHandler) UpdateMaterialPurchase(c *gin.Context) {
	var payload request.MaterialPurchasePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	purchase, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, "[purchase][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(purchase))
}

func (h *MaterialPurchaseHandler) DeleteMaterialPurchase(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[purchase][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
