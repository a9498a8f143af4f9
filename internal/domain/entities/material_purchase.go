package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultMaterialUnit = "adet"

// MaterialPurchase is one procurement against a job from a supplier.
//
// It references a catalog material or carries a free-text name. When both are
// present the catalog link wins. TotalAmount is fixed at write time.
type MaterialPurchase struct {
	ID           string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID        string           `gorm:"type:varchar(36);index;not null" json:"job_id"`
	SupplierID   string           `gorm:"type:varchar(36);index;not null" json:"supplier_id"`
	MaterialID   *string          `gorm:"type:varchar(36);index" json:"material_id,omitempty"`
	MaterialName string           `gorm:"type:varchar(255)" json:"material_name,omitempty"`
	Quantity     decimal.Decimal  `gorm:"type:decimal(14,3);not null" json:"quantity"`
	Unit         string           `gorm:"type:varchar(16);not null" json:"unit"`
	UnitPrice    decimal.Decimal  `gorm:"type:decimal(14,2);not null" json:"unit_price"`
	VatRate      *decimal.Decimal `gorm:"type:decimal(5,2)" json:"vat_rate,omitempty"`
	TotalAmount  decimal.Decimal  `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	PurchaseDate time.Time        `gorm:"index;not null" json:"purchase_date"`
	InvoiceNo    string           `gorm:"type:varchar(64)" json:"invoice_no,omitempty"`
	Notes        string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT" json:"supplier,omitempty"`
	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:RESTRICT" json:"material,omitempty"`
}

// IsCatalogLinked reports whether the purchase points at a catalog material.
func (p MaterialPurchase) IsCatalogLinked() bool {
	return p.MaterialID != nil && strings.TrimSpace(*p.MaterialID) != ""
}

// DisplayName prefers the catalog material name when it is loaded.
func (p MaterialPurchase) DisplayName() string {
	if p.IsCatalogLinked() && p.Material != nil && p.Material.Name != "" {
		return p.Material.Name
	}
	return p.MaterialName
}

// MaterialPurchaseFilter narrows a job's purchases. Empty fields are ignored.
type MaterialPurchaseFilter struct {
	SupplierID string
	MaterialID string
	DateRange
}
