package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentType tells money in (Collection) from money out (Expense).
type PaymentType string

const (
	PaymentTypeCollection PaymentType = "Collection"
	PaymentTypeExpense    PaymentType = "Expense"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeCollection || t == PaymentTypeExpense
}

type PaymentParty string

const (
	PaymentPartyCustomer PaymentParty = "Customer"
	PaymentPartyWorker   PaymentParty = "Worker"
	PaymentPartySupplier PaymentParty = "Supplier"
	PaymentPartyOther    PaymentParty = "Other"
)

func (p PaymentParty) Valid() bool {
	switch p {
	case PaymentPartyCustomer, PaymentPartyWorker, PaymentPartySupplier, PaymentPartyOther:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "BankTransfer"
	PaymentMethodCreditCard   PaymentMethod = "CreditCard"
	PaymentMethodCheque       PaymentMethod = "Cheque"
	PaymentMethodOnline       PaymentMethod = "Online"
	PaymentMethodOther        PaymentMethod = "Other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCreditCard,
		PaymentMethodCheque, PaymentMethodOnline, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is money received from the customer or paid out for a job.
//
// WorkerID links labor-debt settlements to a worker. Online collections keep
// the provider id, status and raw response for reconciliation.
type Payment struct {
	ID                string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID             string          `gorm:"type:varchar(36);index;not null" json:"job_id"`
	Type              PaymentType     `gorm:"type:varchar(16);index;not null" json:"type"`
	Party             PaymentParty    `gorm:"type:varchar(16);not null" json:"party"`
	Method            PaymentMethod   `gorm:"type:varchar(16);not null" json:"method"`
	Amount            decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Currency          Currency        `gorm:"type:varchar(3);not null" json:"currency"`
	PaymentDate       time.Time       `gorm:"index;not null" json:"payment_date"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	WorkerID          *string         `gorm:"type:varchar(36);index" json:"worker_id,omitempty"`
	SupplierID        *string         `gorm:"type:varchar(36);index" json:"supplier_id,omitempty"`
	ProviderReference string          `gorm:"type:varchar(64)" json:"provider_reference,omitempty"`
	ProviderStatus    string          `gorm:"type:varchar(32)" json:"provider_status,omitempty"`
	ProviderPayload   datatypes.JSON  `json:"provider_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Worker *Worker `gorm:"foreignKey:WorkerID;constraint:OnDelete:RESTRICT" json:"worker,omitempty"`
}

// PaymentTotals are payment sums across all jobs.
type PaymentTotals struct {
	Collections decimal.Decimal
	Expenses    decimal.Decimal
}
