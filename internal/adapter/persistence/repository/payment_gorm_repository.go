package repository

import (
	"context"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&p).Error; err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var p entities.Payment
	err := conn(ctx, r.db).Preload("Worker").First(&p, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.Payment{}, "id = ?", id).Error
}

func (r *PaymentGormRepository) ListByJob(ctx context.Context, jobID string) ([]entities.Payment, error) {
	var out []entities.Payment
	err := conn(ctx, r.db).Preload("Worker").
		Where("job_id = ?", jobID).
		Order("payment_date DESC, created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentGormRepository) ListByWorker(ctx context.Context, workerID string) ([]entities.Payment, error) {
	var out []entities.Payment
	err := conn(ctx, r.db).Preload("Worker").
		Where("worker_id = ?", workerID).
		Order("payment_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Totals sums payments across all jobs by type.
func (r *PaymentGormRepository) Totals(ctx context.Context) (entities.PaymentTotals, error) {
	totals := entities.PaymentTotals{Collections: decimal.Zero, Expenses: decimal.Zero}

	rows, err := conn(ctx, r.db).Model(&entities.Payment{}).
		Select("type, COALESCE(SUM(amount), 0)").
		Group("type").
		Rows()
	if err != nil {
		return totals, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t   entities.PaymentType
			sum decimal.Decimal
		)
		if err := rows.Scan(&t, &sum); err != nil {
			return totals, err
		}
		switch t {
		case entities.PaymentTypeCollection:
			totals.Collections = sum
		case entities.PaymentTypeExpense:
			totals.Expenses = sum
		}
	}
	return totals, rows.Err()
}
