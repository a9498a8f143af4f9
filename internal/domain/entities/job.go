package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

// JobStatus is the lifecycle label of a job. Any status can be set from any
// other unless strict transitions are enabled, see ValidateTransition.
type JobStatus string

const (
	JobStatusNew             JobStatus = "New"
	JobStatusOfferInProgress JobStatus = "OfferInProgress"
	JobStatusOfferSent       JobStatus = "OfferSent"
	JobStatusApproved        JobStatus = "Approved"
	JobStatusContracted      JobStatus = "Contracted"
	JobStatusInProgress      JobStatus = "InProgress"
	JobStatusCompleted       JobStatus = "Completed"
	JobStatusCancelled       JobStatus = "Cancelled"
)

var jobStatuses = []JobStatus{
	JobStatusNew,
	JobStatusOfferInProgress,
	JobStatusOfferSent,
	JobStatusApproved,
	JobStatusContracted,
	JobStatusInProgress,
	JobStatusCompleted,
	JobStatusCancelled,
}

var jobStatusProgress = map[JobStatus]int{
	JobStatusNew:             10,
	JobStatusOfferInProgress: 20,
	JobStatusOfferSent:       30,
	JobStatusApproved:        40,
	JobStatusContracted:      50,
	JobStatusInProgress:      70,
	JobStatusCompleted:       100,
	JobStatusCancelled:       0,
}

// jobTransitions is the forward graph used by ValidateTransition. Cancelled is
// reachable from every non-terminal status.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusNew:             {JobStatusOfferInProgress},
	JobStatusOfferInProgress: {JobStatusNew, JobStatusOfferSent},
	JobStatusOfferSent:       {JobStatusOfferInProgress, JobStatusApproved},
	JobStatusApproved:        {JobStatusContracted, JobStatusInProgress},
	JobStatusContracted:      {JobStatusInProgress},
	JobStatusInProgress:      {JobStatusCompleted},
	JobStatusCompleted:       {},
	JobStatusCancelled:       {JobStatusNew},
}

// JobStatuses returns every status in lifecycle order.
func JobStatuses() []JobStatus {
	out := make([]JobStatus, len(jobStatuses))
	copy(out, jobStatuses)
	return out
}

// ParseJobStatus matches s case-insensitively against the known labels.
func ParseJobStatus(s string) (JobStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range jobStatuses {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

func (s JobStatus) Valid() bool {
	_, ok := jobStatusProgress[s]
	return ok
}

// Progress is the completion percentage shown for the status.
func (s JobStatus) Progress() int {
	return jobStatusProgress[s]
}

// ValidateTransition checks a status change against the forward graph.
// Setting the current status again is always allowed.
func ValidateTransition(from, to JobStatus) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
	}
	if from == to {
		return nil
	}
	if to == JobStatusCancelled && from != JobStatusCompleted {
		return nil
	}
	for _, next := range jobTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "Low"
	JobPriorityNormal JobPriority = "Normal"
	JobPriorityHigh   JobPriority = "High"
	JobPriorityUrgent JobPriority = "Urgent"
)

// ParseJobPriority matches s case-insensitively against the known priorities.
func ParseJobPriority(s string) (JobPriority, bool) {
	s = strings.TrimSpace(s)
	for _, p := range []JobPriority{JobPriorityLow, JobPriorityNormal, JobPriorityHigh, JobPriorityUrgent} {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Job is one customer engagement.
//
// LaborCostTotal and MaterialCostTotal are running totals: they always equal
// the sum of TotalAmount over the job's labor entries and material purchases
// and are rewritten in the same transaction as every child mutation.
type Job struct {
	ID              string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	ReferenceCode   string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"reference_code"`
	Title           string         `gorm:"type:varchar(255)" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	CustomerName    string         `gorm:"type:varchar(120);not null" json:"customer_name"`
	CustomerSurname string         `gorm:"type:varchar(120)" json:"customer_surname,omitempty"`
	Company         string         `gorm:"type:varchar(255)" json:"company,omitempty"`
	NationalID      string         `gorm:"type:varchar(11)" json:"national_id,omitempty"`
	TaxNumber       string         `gorm:"type:varchar(20)" json:"tax_number,omitempty"`
	Phone           string         `gorm:"type:varchar(32);not null" json:"phone"`
	Email           string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	City            string         `gorm:"type:varchar(100)" json:"city,omitempty"`
	District        string         `gorm:"type:varchar(100)" json:"district,omitempty"`
	Address         string         `gorm:"type:text" json:"address,omitempty"`
	BillingTitle    string         `gorm:"type:varchar(255)" json:"billing_title,omitempty"`
	DeliveryAddress string         `gorm:"type:text" json:"delivery_address,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`
	Tags            datatypes.JSON `json:"tags,omitempty"`
	Status          JobStatus      `gorm:"type:varchar(32);index;not null" json:"status"`
	Priority        JobPriority    `gorm:"type:varchar(16);not null" json:"priority"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	DueDate         *time.Time     `json:"due_date,omitempty"`

	LaborCostTotal    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"labor_cost_total"`
	MaterialCostTotal decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"material_cost_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerDisplayName joins the customer's name parts.
func (j Job) CustomerDisplayName() string {
	return strings.TrimSpace(j.CustomerName + " " + j.CustomerSurname)
}

// JobFilter narrows job listings. Empty fields are ignored.
type JobFilter struct {
	Status   JobStatus
	Priority JobPriority
	Search   string
}
