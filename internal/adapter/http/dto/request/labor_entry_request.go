package request

import (
	"metalshop/internal/usecase"

	"github.com/shopspring/decimal"
)

// LaborEntryRequest records hours a worker spent on a job. HourlyRate falls
// back to the worker's default rate when omitted.
type LaborEntryRequest struct {
	WorkerID    string           `json:"worker_id" binding:"required"`
	WorkDate    Date             `json:"work_date"`
	Hours       decimal.Decimal  `json:"hours"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Description string           `json:"description"`
}

func (r LaborEntryRequest) ToInput(jobID string) usecase.LaborEntryInput {
	return usecase.LaborEntryInput{
		JobID:       jobID,
		WorkerID:    r.WorkerID,
		WorkDate:    r.WorkDate.Time,
		Hours:       r.Hours,
		HourlyRate:  r.HourlyRate,
		Description: r.Description,
	}
}

// LaborEntryPatchRequest only touches the fields present in the body.
type LaborEntryPatchRequest struct {
	WorkerID    *string          `json:"worker_id"`
	WorkDate    *Date            `json:"work_date"`
	Hours       *decimal.Decimal `json:"hours"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Description *string          `json:"description"`
}

func (r LaborEntryPatchRequest) ToPatch() usecase.LaborEntryPatch {
	return usecase.LaborEntryPatch{
		WorkerID:    r.WorkerID,
		WorkDate:    timePtr(r.WorkDate),
		Hours:       r.Hours,
		HourlyRate:  r.HourlyRate,
		Description: r.Description,
	}
}
