package repository

import (
	"context"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LaborEntryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILaborEntryRepository = (*LaborEntryGormRepository)(nil)

func NewLaborEntryGormRepository(db *gorm.DB) *LaborEntryGormRepository {
	return &LaborEntryGormRepository{db: db}
}

func (r *LaborEntryGormRepository) Create(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&e).Error; err != nil {
		return entities.LaborEntry{}, err
	}
	return e, nil
}

func (r *LaborEntryGormRepository) GetByID(ctx context.Context, id string) (entities.LaborEntry, error) {
	var e entities.LaborEntry
	err := conn(ctx, r.db).Preload("Worker").First(&e, "id = ?", id).Error
	if isNotFound(err) {
		return entities.LaborEntry{}, nil
	}
	if err != nil {
		return entities.LaborEntry{}, err
	}
	return e, nil
}

func (r *LaborEntryGormRepository) Update(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(&e).Error; err != nil {
		return entities.LaborEntry{}, err
	}
	return e, nil
}

func (r *LaborEntryGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.LaborEntry{}, "id = ?", id).Error
}

func (r *LaborEntryGormRepository) ListByJob(ctx context.Context, jobID string, filter entities.LaborEntryFilter) ([]entities.LaborEntry, error) {
	q := conn(ctx, r.db).Preload("Worker").Where("labor_entries.job_id = ?", jobID)
	if filter.WorkerID != "" {
		q = q.Where("labor_entries.worker_id = ?", filter.WorkerID)
	}
	if filter.RoleType != "" {
		q = q.Joins("JOIN workers ON workers.id = labor_entries.worker_id").
			Where("workers.role_type = ?", filter.RoleType)
	}
	if filter.From != nil {
		q = q.Where("labor_entries.work_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("labor_entries.work_date <= ?", *filter.To)
	}

	var out []entities.LaborEntry
	if err := q.Order("labor_entries.work_date DESC, labor_entries.created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LaborEntryGormRepository) ListByWorker(ctx context.Context, workerID string) ([]entities.LaborEntry, error) {
	var out []entities.LaborEntry
	err := conn(ctx, r.db).Preload("Worker").
		Where("worker_id = ?", workerID).
		Order("work_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LaborEntryGormRepository) CountByWorker(ctx context.Context, workerID string) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&entities.LaborEntry{}).Where("worker_id = ?", workerID).Count(&n).Error
	return n, err
}
