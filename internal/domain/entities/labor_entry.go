package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LaborEntry is one worker's hours logged against a job.
// TotalAmount is fixed at write time as Hours x HourlyRate.
type LaborEntry struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID       string          `gorm:"type:varchar(36);index;not null" json:"job_id"`
	WorkerID    string          `gorm:"type:varchar(36);index;not null" json:"worker_id"`
	WorkDate    time.Time       `gorm:"index;not null" json:"work_date"`
	Hours       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"hours"`
	HourlyRate  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"hourly_rate"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Worker *Worker `gorm:"foreignKey:WorkerID;constraint:OnDelete:RESTRICT" json:"worker,omitempty"`
}

// LaborEntryFilter narrows a job's labor entries. Empty fields are ignored.
type LaborEntryFilter struct {
	WorkerID string
	RoleType WorkerRoleType
	DateRange
}
