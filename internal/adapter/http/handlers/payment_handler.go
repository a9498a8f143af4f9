package handlers

import (
	"encoding/json"
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	response "metalshop/internal/adapter/http/dto/response"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentHandler handles recorded payments, worker settlements and online
// customer collections.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

// NewPaymentHandler builds the handler. In mock mode an unreadable online
// collection body falls back to an empty provider payload.
func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary  Record a collection or an expense on a job
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Job ID"
// @Param    payment  body      request.PaymentRequest  true  "Payment"
// @Success  201      {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	payment, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[payment][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(response.FromPayment(payment)))
}

// CollectOnline godoc
// @Summary  Charge the customer through Mercado Pago
// @Description  Body is the Mercado Pago payment payload, either raw or wrapped as {"amount": ..., "mp_payload": {...}}. The amount defaults to the remaining receivable.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id      path      string  true   "Job ID"
// @Param    amount  query     string  false  "Amount to collect"
// @Success  201     {object}  pkg.Envelope
// @Failure  402     {object}  pkg.Envelope
// @Failure  409     {object}  pkg.Envelope
// @Security Bearer
// @Router   /jobs/{id}/collections/online [post]
func (h *PaymentHandler) CollectOnline(c *gin.Context) {
	jobID := c.Param("id")
	log := logger.FromGin(c).With(zap.String("job_id", jobID))
	log.Info("[payment][handler] collect-online start")

	collection, err := h.readCollection(c)
	if err != nil {
		if !h.mockMode {
			log.Info("[payment][handler] invalid payload", zap.Error(err))
			respondBadRequest(c, errInvalidPayload, err)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; falling back to empty payload", zap.Error(err))
		collection = request.OnlineCollectionRequest{MPPayload: json.RawMessage("{}")}
	}
	if collection.Amount == nil {
		if raw := c.Query("amount"); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				respondBadRequest(c, errInvalidQuery, err)
				return
			}
			collection.Amount = &amount
		}
	}

	payment, err := h.usecase.CollectOnline(c.Request.Context(), collection.ToInput(jobID))
	if err != nil {
		respondError(c, "[payment][handler] collect-online", err)
		return
	}
	log.Info("[payment][handler] collect-online success",
		zap.String("payment_id", payment.ID),
		zap.String("provider_reference", payment.ProviderReference),
		zap.String("amount", payment.Amount.String()),
	)

	c.JSON(http.StatusCreated, pkg.Success(response.FromPayment(payment)))
}

func (h *PaymentHandler) readCollection(c *gin.Context) (request.OnlineCollectionRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return request.OnlineCollectionRequest{}, err
	}
	return request.ParseOnlineCollection(raw)
}

// SettleWorker godoc
// @Summary  Pay a worker's outstanding labor in cash
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id          path      string                           true  "Worker ID"
// @Param    settlement  body      request.WorkerSettlementRequest  true  "Settlement"
// @Success  201         {object}  pkg.Envelope
// @Security Bearer
// @Router   /workers/{id}/settlements [post]
func (h *PaymentHandler) SettleWorker(c *gin.Context) {
	var payload request.WorkerSettlementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	payment, err := h.usecase.SettleWorker(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[payment][handler] settle-worker", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(response.FromPayment(payment)))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[payment][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromPayments(payments)))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[payment][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromPayment(payment)))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[payment][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
