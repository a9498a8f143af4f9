package request

import (
	"time"

	"metalshop/internal/usecase"

	"github.com/shopspring/decimal"
)

type OfferItemRequest struct {
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VatRate     decimal.Decimal `json:"vat_rate"`
}

// OfferRequest creates an offer or replaces it with its items.
type OfferRequest struct {
	Title      string             `json:"title"`
	Currency   string             `json:"currency"`
	ValidUntil *Date              `json:"valid_until"`
	Notes      string             `json:"notes"`
	Items      []OfferItemRequest `json:"items"`
}

func (r OfferRequest) ToInput(jobID string) usecase.OfferInput {
	items := make([]usecase.OfferItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OfferItemInput{
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			VatRate:     it.VatRate,
		})
	}
	return usecase.OfferInput{
		JobID:      jobID,
		Title:      r.Title,
		Currency:   r.Currency,
		ValidUntil: timePtr(r.ValidUntil),
		Notes:      r.Notes,
		Items:      items,
	}
}

type ContractRequest struct {
	ContractNo  string          `json:"contract_no"`
	Title       string          `json:"title"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes"`
}

func (r ContractRequest) ToInput(jobID string) usecase.ContractInput {
	return usecase.ContractInput{
		JobID:       jobID,
		ContractNo:  r.ContractNo,
		Title:       r.Title,
		TotalAmount: r.TotalAmount,
		Currency:    r.Currency,
		Notes:       r.Notes,
	}
}

type PaymentPlanRequest struct {
	DueDate     Date            `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r PaymentPlanRequest) ToInput(jobID string) usecase.PaymentPlanInput {
	return usecase.PaymentPlanInput{JobID: jobID, DueDate: r.DueDate.Time, Amount: r.Amount, Description: r.Description}
}

// MarkPaidRequest is optional; the current time is used without it.
type MarkPaidRequest struct {
	PaidAt *Date `json:"paid_at"`
}

func (r MarkPaidRequest) PaidAtTime() *time.Time {
	return timePtr(r.PaidAt)
}

type FileRequest struct {
	Category   string `json:"category"`
	FileName   string `json:"file_name" binding:"required"`
	MimeType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`
	StorageKey string `json:"storage_key" binding:"required"`
}

func (r FileRequest) ToInput(jobID string) usecase.FileInput {
	return usecase.FileInput{
		JobID:      jobID,
		Category:   r.Category,
		FileName:   r.FileName,
		MimeType:   r.MimeType,
		SizeBytes:  r.SizeBytes,
		StorageKey: r.StorageKey,
	}
}
