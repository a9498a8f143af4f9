package request

import "metalshop/internal/usecase"

// JobRequest is used for both creating and replacing a job.
type JobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CustomerName    string   `json:"customer_name"`
	CustomerSurname string   `json:"customer_surname"`
	Company         string   `json:"company"`
	NationalID      string   `json:"national_id"`
	TaxNumber       string   `json:"tax_number"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	City            string   `json:"city"`
	District        string   `json:"district"`
	Address         string   `json:"address"`
	BillingTitle    string   `json:"billing_title"`
	DeliveryAddress string   `json:"delivery_address"`
	Notes           string   `json:"notes"`
	Tags            []string `json:"tags"`
	Priority        string   `json:"priority"`
	StartDate       *Date    `json:"start_date"`
	DueDate         *Date    `json:"due_date"`
}

func (r JobRequest) ToInput() usecase.JobInput {
	return usecase.JobInput{
		Title:           r.Title,
		Description:     r.Description,
		CustomerName:    r.CustomerName,
		CustomerSurname: r.CustomerSurname,
		Company:         r.Company,
		NationalID:      r.NationalID,
		TaxNumber:       r.TaxNumber,
		Phone:           r.Phone,
		Email:           r.Email,
		City:            r.City,
		District:        r.District,
		Address:         r.Address,
		BillingTitle:    r.BillingTitle,
		DeliveryAddress: r.DeliveryAddress,
		Notes:           r.Notes,
		Tags:            r.Tags,
		Priority:        r.Priority,
		StartDate:       timePtr(r.StartDate),
		DueDate:         timePtr(r.DueDate),
	}
}

// StatusRequest changes the status of a job, offer or contract.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
