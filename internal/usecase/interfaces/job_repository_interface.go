package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IJobRepository abstracts persistence for Job.
//
// RecomputeCostTotal is the only writer of the running totals: it sums the
// current child rows of the category and overwrites the job field.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, id string) error
	NextReferenceSequence(ctx context.Context, year int) (int, error)
	RecomputeCostTotal(ctx context.Context, jobID string, category entities.CostCategory) (decimal.Decimal, error)
	CountByStatus(ctx context.Context) (map[entities.JobStatus]int64, error)
	SumCostTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error)
}
