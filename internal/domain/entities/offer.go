package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferStatusDraft             OfferStatus = "Draft"
	OfferStatusSent              OfferStatus = "Sent"
	OfferStatusAccepted          OfferStatus = "Accepted"
	OfferStatusRejected          OfferStatus = "Rejected"
	OfferStatusRevisionRequested OfferStatus = "RevisionRequested"
	OfferStatusExpired           OfferStatus = "Expired"
)

// ParseOfferStatus matches s case-insensitively against the known labels.
func ParseOfferStatus(s string) (OfferStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range []OfferStatus{
		OfferStatusDraft, OfferStatusSent, OfferStatusAccepted,
		OfferStatusRejected, OfferStatusRevisionRequested, OfferStatusExpired,
	} {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// Offer is a priced proposal for a job. Only accepted offers count toward
// the receivable. Totals are computed from the items at write time.
type Offer struct {
	ID         string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID      string          `gorm:"type:varchar(36);index;not null" json:"job_id"`
	Title      string          `gorm:"type:varchar(255)" json:"title,omitempty"`
	Status     OfferStatus     `gorm:"type:varchar(24);index;not null" json:"status"`
	Currency   Currency        `gorm:"type:varchar(3);not null" json:"currency"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"subtotal"`
	VatTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"vat_total"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"grand_total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Items []OfferItem `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"items"`
}

// OfferItem is one priced line of an offer. LineTotal excludes VAT.
type OfferItem struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	OfferID     string          `gorm:"type:varchar(36);index;not null" json:"offer_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"quantity"`
	Unit        string          `gorm:"type:varchar(16);not null" json:"unit"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"unit_price"`
	VatRate     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"vat_rate"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"line_total"`
	SortOrder   int             `gorm:"not null" json:"sort_order"`
}
