package request

import (
	"metalshop/internal/usecase"

	"github.com/shopspring/decimal"
)

// MaterialPurchaseRequest links a catalog material through MaterialID or
// names a free-text material through MaterialName.
type MaterialPurchaseRequest struct {
	SupplierID   string           `json:"supplier_id" binding:"required"`
	MaterialID   *string          `json:"material_id"`
	MaterialName string           `json:"material_name"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	VatRate      *decimal.Decimal `json:"vat_rate"`
	PurchaseDate *Date            `json:"purchase_date"`
	InvoiceNo    string           `json:"invoice_no"`
	Notes        string           `json:"notes"`
}

func (r MaterialPurchaseRequest) ToInput(jobID string) usecase.MaterialPurchaseInput {
	return usecase.MaterialPurchaseInput{
		JobID:        jobID,
		SupplierID:   r.SupplierID,
		MaterialID:   r.MaterialID,
		MaterialName: r.MaterialName,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		UnitPrice:    r.UnitPrice,
		VatRate:      r.VatRate,
		PurchaseDate: timeOrZero(r.PurchaseDate),
		InvoiceNo:    r.InvoiceNo,
		Notes:        r.Notes,
	}
}

type MaterialPurchasePatchRequest struct {
	SupplierID   *string          `json:"supplier_id"`
	MaterialID   *string          `json:"material_id"`
	MaterialName *string          `json:"material_name"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	VatRate      *decimal.Decimal `json:"vat_rate"`
	PurchaseDate *Date            `json:"purchase_date"`
	InvoiceNo    *string          `json:"invoice_no"`
	Notes        *string          `json:"notes"`
}

func (r MaterialPurchasePatchRequest) ToPatch() usecase.MaterialPurchasePatch {
	return usecase.MaterialPurchasePatch{
		SupplierID:   r.SupplierID,
		MaterialID:   r.MaterialID,
		MaterialName: r.MaterialName,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		UnitPrice:    r.UnitPrice,
		VatRate:      r.VatRate,
		PurchaseDate: timePtr(r.PurchaseDate),
		InvoiceNo:    r.InvoiceNo,
		Notes:        r.Notes,
	}
}
