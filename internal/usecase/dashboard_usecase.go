package usecase

import (
	"context"

	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Dashboard is the cross-job overview shown on the home screen.
type Dashboard struct {
	JobsByStatus      map[entities.JobStatus]int64 `json:"jobs_by_status"`
	TotalJobs         int64                        `json:"total_jobs"`
	ActiveJobs        int64                        `json:"active_jobs"`
	TotalCollections  decimal.Decimal              `json:"total_collections"`
	TotalExpenses     decimal.Decimal              `json:"total_expenses"`
	LaborCostTotal    decimal.Decimal              `json:"labor_cost_total"`
	MaterialCostTotal decimal.Decimal              `json:"material_cost_total"`
	ActiveWorkers     int64                        `json:"active_workers"`
	ActiveSuppliers   int64                        `json:"active_suppliers"`
}

type IDashboardUseCase interface {
	Get(ctx context.Context) (Dashboard, error)
}

type DashboardUseCase struct {
	repos Repositories
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repos Repositories) *DashboardUseCase {
	return &DashboardUseCase{repos: repos}
}

// Get counts jobs per status, with every known status present, and sums
// payments and running cost totals across all jobs. Active jobs are the
// ones neither completed nor cancelled.
func (u *DashboardUseCase) Get(ctx context.Context) (Dashboard, error) {
	counts, err := u.repos.Jobs.CountByStatus(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d := Dashboard{JobsByStatus: make(map[entities.JobStatus]int64, len(counts))}
	for _, st := range entities.JobStatuses() {
		n := counts[st]
		d.JobsByStatus[st] = n
		d.TotalJobs += n
		if st != entities.JobStatusCompleted && st != entities.JobStatusCancelled {
			d.ActiveJobs += n
		}
	}

	totals, err := u.repos.Payments.Totals(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d.TotalCollections, d.TotalExpenses = totals.Collections, totals.Expenses

	if d.LaborCostTotal, d.MaterialCostTotal, err = u.repos.Jobs.SumCostTotals(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.ActiveWorkers, err = u.repos.Workers.CountActive(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.ActiveSuppliers, err = u.repos.Suppliers.CountActive(ctx); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
