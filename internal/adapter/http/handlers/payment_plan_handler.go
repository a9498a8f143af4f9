package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

type PaymentPlanHandler struct {
	usecase usecase.IPaymentPlanUseCase
}

func NewPaymentPlanHandler(uc usecase.IPaymentPlanUseCase) *PaymentPlanHandler {
	return &PaymentPlanHandler{usecase: uc}
}

func (h *PaymentPlanHandler) CreatePaymentPlan(c *gin.Context) {
	var payload request.PaymentPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	plan, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[plan][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(plan))
}

// ListPaymentPlans reports overdue installments as Overdue.
func (h *PaymentPlanHandler) ListPaymentPlans(c *gin.Context) {
	plans, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[plan][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(plans))
}

func (h *PaymentPlanHandler) MarkPaymentPlanPaid(c *gin.Context) {
	var payload request.MarkPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondBadRequest(c, errInvalidPayload, err)
			return
		}
	}

	plan, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("id"), payload.PaidAtTime())
	if err != nil {
		respondError(c, "[plan][handler] mark-paid", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(plan))
}

func (h *PaymentPlanHandler) DeletePaymentPlan(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[plan][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
