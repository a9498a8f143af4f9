package request

import (
	"metalshop/internal/usecase"

	"github.com/shopspring/decimal"
)

type WorkerRequest struct {
	FirstName         string          `json:"first_name" binding:"required"`
	LastName          string          `json:"last_name"`
	Phone             string          `json:"phone"`
	RoleType          string          `json:"role_type"`
	HourlyRateDefault decimal.Decimal `json:"hourly_rate_default"`
	Notes             string          `json:"notes"`
}

func (r WorkerRequest) ToInput() usecase.WorkerInput {
	return usecase.WorkerInput{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		RoleType:          r.RoleType,
		HourlyRateDefault: r.HourlyRateDefault,
		Notes:             r.Notes,
	}
}

type SupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TaxNumber   string `json:"tax_number"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

func (r SupplierRequest) ToInput() usecase.SupplierInput {
	return usecase.SupplierInput{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		TaxNumber:   r.TaxNumber,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

type MaterialRequest struct {
	Name             string           `json:"name" binding:"required"`
	Category         string           `json:"category"`
	Unit             string           `json:"unit"`
	DefaultUnitPrice decimal.Decimal  `json:"default_unit_price"`
	DefaultVatRate   *decimal.Decimal `json:"default_vat_rate"`
}

func (r MaterialRequest) ToInput() usecase.MaterialInput {
	return usecase.MaterialInput{
		Name:             r.Name,
		Category:         r.Category,
		Unit:             r.Unit,
		DefaultUnitPrice: r.DefaultUnitPrice,
		DefaultVatRate:   r.DefaultVatRate,
	}
}
