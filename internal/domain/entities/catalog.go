package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type WorkerRoleType string

const (
	WorkerRoleMaster  WorkerRoleType = "Master"
	WorkerRoleLaborer WorkerRoleType = "Laborer"
)

func ParseWorkerRoleType(s string) (WorkerRoleType, bool) {
	s = strings.TrimSpace(s)
	for _, r := range []WorkerRoleType{WorkerRoleMaster, WorkerRoleLaborer} {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// Worker is an archivable catalog entry. HourlyRateDefault seeds new labor
// entries when the caller does not give a rate.
type Worker struct {
	ID                string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName         string          `gorm:"type:varchar(120);not null" json:"first_name"`
	LastName          string          `gorm:"type:varchar(120)" json:"last_name,omitempty"`
	Phone             string          `gorm:"type:varchar(32)" json:"phone,omitempty"`
	RoleType          WorkerRoleType  `gorm:"type:varchar(16);index;not null" json:"role_type"`
	HourlyRateDefault decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"hourly_rate_default"`
	IsActive          bool            `gorm:"index;not null;default:true" json:"is_active"`
	Notes             string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (w Worker) FullName() string {
	return strings.TrimSpace(w.FirstName + " " + w.LastName)
}

// Supplier is an archivable catalog entry.
type Supplier struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactName string    `gorm:"type:varchar(120)" json:"contact_name,omitempty"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	TaxNumber   string    `gorm:"type:varchar(20)" json:"tax_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	IsActive    bool      `gorm:"index;not null;default:true" json:"is_active"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Material is an archivable catalog entry. DefaultVatRate seeds purchases
// when the caller does not give a rate.
type Material struct {
	ID               string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Category         string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	Unit             string          `gorm:"type:varchar(16);not null" json:"unit"`
	DefaultUnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"default_unit_price"`
	DefaultVatRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"default_vat_rate"`
	IsActive         bool            `gorm:"index;not null;default:true" json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CatalogFilter narrows catalog listings. RoleType only applies to workers.
type CatalogFilter struct {
	IsActive *bool
	Search   string
	RoleType WorkerRoleType
}
