package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles price offers. Only accepted offers feed the job's
// expected revenue.
type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.OfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	offer, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[offer][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(offer))
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	offers, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[offer][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(offers))
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[offer][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(offer))
}

// UpdateOffer replaces the offer and all of its items.
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	var payload request.OfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	offer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput(""))
	if err != nil {
		respondError(c, "[offer][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(offer))
}

func (h *OfferHandler) UpdateOfferStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	offer, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, "[offer][handler] update-status", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(offer))
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[offer][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
