package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "Draft"
	ContractStatusSentForSignature ContractStatus = "SentForSignature"
	ContractStatusSigned           ContractStatus = "Signed"
	ContractStatusCancelled        ContractStatus = "Cancelled"
)

func ParseContractStatus(s string) (ContractStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range []ContractStatus{
		ContractStatusDraft, ContractStatusSentForSignature, ContractStatusSigned, ContractStatusCancelled,
	} {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// Contract is the signed agreement for a job. Signed contracts take
// precedence over accepted offers as the receivable base.
type Contract struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID       string          `gorm:"type:varchar(36);index;not null" json:"job_id"`
	ContractNo  string          `gorm:"type:varchar(64)" json:"contract_no,omitempty"`
	Title       string          `gorm:"type:varchar(255)" json:"title,omitempty"`
	Status      ContractStatus  `gorm:"type:varchar(24);index;not null" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	Currency    Currency        `gorm:"type:varchar(3);not null" json:"currency"`
	SignedAt    *time.Time      `json:"signed_at,omitempty"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
