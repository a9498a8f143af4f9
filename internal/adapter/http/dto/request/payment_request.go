package request

import (
	"encoding/json"
	"errors"
	"strings"

	"metalshop/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidProviderPayload = errors.New("request body is not valid json")

type PaymentRequest struct {
	Type        string          `json:"type" binding:"required"`
	Party       string          `json:"party" binding:"required"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PaymentDate *Date           `json:"payment_date"`
	Description string          `json:"description"`
	WorkerID    *string         `json:"worker_id"`
	SupplierID  *string         `json:"supplier_id"`
}

func (r PaymentRequest) ToInput(jobID string) usecase.PaymentInput {
	return usecase.PaymentInput{
		JobID:       jobID,
		Type:        r.Type,
		Party:       r.Party,
		Method:      r.Method,
		Amount:      r.Amount,
		Currency:    r.Currency,
		PaymentDate: timeOrZero(r.PaymentDate),
		Description: r.Description,
		WorkerID:    r.WorkerID,
		SupplierID:  r.SupplierID,
	}
}

// WorkerSettlementRequest pays a worker's outstanding labor in cash.
type WorkerSettlementRequest struct {
	JobID       string          `json:"job_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *Date           `json:"payment_date"`
	Description string          `json:"description"`
}

func (r WorkerSettlementRequest) ToInput(workerID string) usecase.WorkerSettlementInput {
	return usecase.WorkerSettlementInput{
		WorkerID:    workerID,
		JobID:       r.JobID,
		Amount:      r.Amount,
		PaymentDate: timeOrZero(r.PaymentDate),
		Description: r.Description,
	}
}

// OnlineCollectionRequest is the body of an online collection. Clients either
// post the Mercado Pago payment payload as-is or wrap it as
// {"amount": ..., "mp_payload": {...}}.
type OnlineCollectionRequest struct {
	Amount    *decimal.Decimal
	MPPayload json.RawMessage
}

func (r OnlineCollectionRequest) ToInput(jobID string) usecase.OnlineCollectionInput {
	return usecase.OnlineCollectionInput{JobID: jobID, Amount: r.Amount, Payload: r.MPPayload}
}

// ParseOnlineCollection reads either body shape. An empty body yields an
// empty object so mock mode can still run.
func ParseOnlineCollection(raw []byte) (OnlineCollectionRequest, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return OnlineCollectionRequest{MPPayload: json.RawMessage("{}")}, nil
	}
	if !json.Valid(raw) {
		return OnlineCollectionRequest{}, ErrInvalidProviderPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return OnlineCollectionRequest{}, ErrInvalidProviderPayload
	}
	wrapped, ok := envelope["mp_payload"]
	if !ok {
		return OnlineCollectionRequest{MPPayload: json.RawMessage(raw)}, nil
	}
	if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
		return OnlineCollectionRequest{}, errors.New("mp_payload cannot be empty")
	}

	out := OnlineCollectionRequest{MPPayload: wrapped}
	if amountRaw, ok := envelope["amount"]; ok && strings.TrimSpace(string(amountRaw)) != "null" {
		var amount decimal.Decimal
		if err := json.Unmarshal(amountRaw, &amount); err != nil {
			return OnlineCollectionRequest{}, errors.New("amount must be a number")
		}
		out.Amount = &amount
	}
	return out, nil
}
