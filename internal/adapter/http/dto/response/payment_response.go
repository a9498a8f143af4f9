package response

import (
	"encoding/json"
	"time"

	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentResponse exposes the provider response both raw and decoded so
// online collections can be reconciled by hand.
type PaymentResponse struct {
	ID                string          `json:"id"`
	JobID             string          `json:"job_id"`
	Type              string          `json:"type"`
	Party             string          `json:"party"`
	Method            string          `json:"method"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PaymentDate       time.Time       `json:"payment_date"`
	Description       string          `json:"description,omitempty"`
	WorkerID          *string         `json:"worker_id,omitempty"`
	SupplierID        *string         `json:"supplier_id,omitempty"`
	ProviderReference string          `json:"provider_reference,omitempty"`
	ProviderStatus    string          `json:"provider_status,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:                p.ID,
		JobID:             p.JobID,
		Type:              string(p.Type),
		Party:             string(p.Party),
		Method:            string(p.Method),
		Amount:            p.Amount,
		Currency:          string(p.Currency),
		PaymentDate:       p.PaymentDate,
		Description:       p.Description,
		WorkerID:          p.WorkerID,
		SupplierID:        p.SupplierID,
		ProviderReference: p.ProviderReference,
		ProviderStatus:    p.ProviderStatus,
		CreatedAt:         p.CreatedAt,
	}
	if len(p.ProviderPayload) > 0 {
		res.ProviderPayloadRaw = string(p.ProviderPayload)
		var decoded map[string]any
		if err := json.Unmarshal(p.ProviderPayload, &decoded); err == nil {
			res.ProviderPayload = decoded
		}
	}
	return res
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
