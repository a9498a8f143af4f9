package response

import (
	"encoding/json"
	"time"

	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// JobResponse is a job with its tags decoded and the progress derived from
// the status.
type JobResponse struct {
	ID                string          `json:"id"`
	ReferenceCode     string          `json:"reference_code"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	CustomerName      string          `json:"customer_name"`
	CustomerSurname   string          `json:"customer_surname,omitempty"`
	Company           string          `json:"company,omitempty"`
	NationalID        string          `json:"national_id,omitempty"`
	TaxNumber         string          `json:"tax_number,omitempty"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email,omitempty"`
	City              string          `json:"city,omitempty"`
	District          string          `json:"district,omitempty"`
	Address           string          `json:"address,omitempty"`
	BillingTitle      string          `json:"billing_title,omitempty"`
	DeliveryAddress   string          `json:"delivery_address,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Tags              []string        `json:"tags"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	Progress          int             `json:"progress"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	LaborCostTotal    decimal.Decimal `json:"labor_cost_total"`
	MaterialCostTotal decimal.Decimal `json:"material_cost_total"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	tags := []string{}
	if len(j.Tags) > 0 {
		_ = json.Unmarshal(j.Tags, &tags)
	}
	return JobResponse{
		ID:                j.ID,
		ReferenceCode:     j.ReferenceCode,
		Title:             j.Title,
		Description:       j.Description,
		CustomerName:      j.CustomerName,
		CustomerSurname:   j.CustomerSurname,
		Company:           j.Company,
		NationalID:        j.NationalID,
		TaxNumber:         j.TaxNumber,
		Phone:             j.Phone,
		Email:             j.Email,
		City:              j.City,
		District:          j.District,
		Address:           j.Address,
		BillingTitle:      j.BillingTitle,
		DeliveryAddress:   j.DeliveryAddress,
		Notes:             j.Notes,
		Tags:              tags,
		Status:            string(j.Status),
		Priority:          string(j.Priority),
		Progress:          j.Status.Progress(),
		StartDate:         j.StartDate,
		DueDate:           j.DueDate,
		LaborCostTotal:    j.LaborCostTotal,
		MaterialCostTotal: j.MaterialCostTotal,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
