package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const referencePrefix = "JOB"

// jobDescriptiveColumns are the columns Update may touch. Status and the
// running totals have their own writers.
var jobDescriptiveColumns = []string{
	"title", "description", "customer_name", "customer_surname", "company",
	"national_id", "tax_number", "phone", "email", "city", "district",
	"address", "billing_title", "delivery_address", "notes", "tags",
	"priority", "start_date", "due_date", "updated_at",
}

// JobGormRepository persists Job rows and owns the running total recompute.
type JobGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobGormRepository)(nil)

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	if err := conn(ctx, r.db).Create(&j).Error; err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobGormRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	var j entities.Job
	err := conn(ctx, r.db).First(&j, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobGormRepository) List(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error) {
	q := conn(ctx, r.db).Model(&entities.Job{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		p := likePattern(s)
		q = q.Where(
			"LOWER(reference_code) LIKE ? OR LOWER(title) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(customer_surname) LIKE ? OR LOWER(company) LIKE ? OR phone LIKE ?",
			p, p, p, p, p, p,
		)
	}

	var out []entities.Job
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *JobGormRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	res := conn(ctx, r.db).Model(&entities.Job{}).Where("id = ?", j.ID).Select(jobDescriptiveColumns).Updates(&j)
	if res.Error != nil {
		return entities.Job{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Job{}, nil
	}
	return r.GetByID(ctx, j.ID)
}

func (r *JobGormRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	res := conn(ctx, r.db).Model(&entities.Job{}).Where("id = ?", id).Updates(map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Job{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Job{}, nil
	}
	return r.GetByID(ctx, id)
}

// Delete erases the job together with every row that belongs to it. Audit
// entries are kept.
func (r *JobGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		offerIDs := tx.Model(&entities.Offer{}).Select("id").Where("job_id = ?", id)
		if err := tx.Where("offer_id IN (?)", offerIDs).Delete(&entities.OfferItem{}).Error; err != nil {
			return err
		}
		for _, child := range []any{
			&entities.Offer{},
			&entities.Contract{},
			&entities.Payment{},
			&entities.PaymentPlan{},
			&entities.LaborEntry{},
			&entities.MaterialPurchase{},
			&entities.File{},
		} {
			if err := tx.Where("job_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entities.Job{}, "id = ?", id).Error
	})
}

// NextReferenceSequence returns the next free sequence for JOB-<year>-NNNN.
func (r *JobGormRepository) NextReferenceSequence(ctx context.Context, year int) (int, error) {
	prefix := fmt.Sprintf("%s-%d-", referencePrefix, year)

	// codes are zero-padded to four digits and grow past 9999, so the
	// longest code sorts first
	var codes []string
	err := conn(ctx, r.db).Model(&entities.Job{}).
		Where("reference_code LIKE ?", prefix+"%").
		Order("LENGTH(reference_code) DESC").
		Order("reference_code DESC").
		Limit(1).
		Pluck("reference_code", &codes).Error
	if err != nil {
		return 0, err
	}
	if len(codes) == 0 || codes[0] == "" {
		return 1, nil
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(codes[0], prefix))
	if err != nil {
		return 0, fmt.Errorf("unexpected reference code %q: %w", codes[0], err)
	}
	return seq + 1, nil
}

// RecomputeCostTotal locks the job row, sums the category's current child
// rows and overwrites the running total. It must run inside the transaction
// of the child mutation.
func (r *JobGormRepository) RecomputeCostTotal(ctx context.Context, jobID string, category entities.CostCategory) (decimal.Decimal, error) {
	var (
		model  any
		column string
	)
	switch category {
	case entities.CostCategoryLabor:
		model, column = &entities.LaborEntry{}, "labor_cost_total"
	case entities.CostCategoryMaterial:
		model, column = &entities.MaterialPurchase{}, "material_cost_total"
	default:
		return decimal.Zero, fmt.Errorf("unknown cost category %q", category)
	}

	db := conn(ctx, r.db)

	var locked entities.Job
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, "id = ?", jobID).Error; err != nil {
		return decimal.Zero, fmt.Errorf("lock job %s: %w", jobID, err)
	}

	var total decimal.Decimal
	if err := db.Model(model).Where("job_id = ?", jobID).Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum %s costs: %w", category, err)
	}
	total = total.Round(2)

	res := db.Model(&entities.Job{}).Where("id = ?", jobID).Updates(map[string]any{
		column:       total,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return decimal.Zero, fmt.Errorf("write %s: %w", column, res.Error)
	}
	return total, nil
}

func (r *JobGormRepository) CountByStatus(ctx context.Context) (map[entities.JobStatus]int64, error) {
	var rows []struct {
		Status entities.JobStatus
		Count  int64
	}
	err := conn(ctx, r.db).Model(&entities.Job{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[entities.JobStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *JobGormRepository) SumCostTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var labor, material decimal.Decimal
	err := conn(ctx, r.db).Model(&entities.Job{}).
		Select("COALESCE(SUM(labor_cost_total), 0), COALESCE(SUM(material_cost_total), 0)").
		Row().Scan(&labor, &material)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return labor, material, nil
}
