package finance

import (
	"time"

	"metalshop/internal/domain/entities"
)

// JobReport is everything exported for a job's financial report.
type JobReport struct {
	GeneratedAt time.Time
	Job         entities.Job
	Summary     Summary
	Labor       []entities.LaborEntry
	Purchases   []entities.MaterialPurchase
	Payments    []entities.Payment
	Workers     []WorkerTotal
	Suppliers   []SupplierTotal
}
