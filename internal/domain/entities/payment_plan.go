package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentPlanStatus string

const (
	PaymentPlanStatusPending PaymentPlanStatus = "Pending"
	PaymentPlanStatusPaid    PaymentPlanStatus = "Paid"
	PaymentPlanStatusOverdue PaymentPlanStatus = "Overdue"
)

// PaymentPlan is one expected customer installment.
type PaymentPlan struct {
	ID          string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID       string            `gorm:"type:varchar(36);index;not null" json:"job_id"`
	DueDate     time.Time         `gorm:"index;not null" json:"due_date"`
	Amount      decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"amount"`
	Status      PaymentPlanStatus `gorm:"type:varchar(16);not null" json:"status"`
	PaidAt      *time.Time        `json:"paid_at,omitempty"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsOverdue reports an unpaid installment whose due date has passed.
func (p PaymentPlan) IsOverdue(now time.Time) bool {
	return p.Status != PaymentPlanStatusPaid && p.DueDate.Before(now)
}

// IsUpcoming reports an unpaid installment due within window from now.
func (p PaymentPlan) IsUpcoming(now time.Time, window time.Duration) bool {
	if p.Status == PaymentPlanStatusPaid || p.DueDate.Before(now) {
		return false
	}
	return !p.DueDate.After(now.Add(window))
}
