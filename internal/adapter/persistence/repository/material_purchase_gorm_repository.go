package repository

import (
	"context"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MaterialPurchaseGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMaterialPurchaseRepository = (*MaterialPurchaseGormRepository)(nil)

func NewMaterialPurchaseGormRepository(db *gorm.DB) *MaterialPurchaseGormRepository {
	return &MaterialPurchaseGormRepository{db: db}
}

func (r *MaterialPurchaseGormRepository) Create(ctx context.Context, p entities.MaterialPurchase) (entities.MaterialPurchase, error) {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&p).Error; err != nil {
		return entities.MaterialPurchase{}, err
	}
	return p, nil
}

func (r *MaterialPurchaseGormRepository) GetByID(ctx context.Context, id string) (entities.MaterialPurchase, error) {
	var p entities.MaterialPurchase
	err := conn(ctx, r.db).Preload("Supplier").Preload("Material").First(&p, "id = ?", id).Error
	if isNotFound(err) {
		return entities.MaterialPurchase{}, nil
	}
	if err != nil {
		return entities.MaterialPurchase{}, err
	}
	return p, nil
}

func (r *MaterialPurchaseGormRepository) Update(ctx context.Context, p entities.MaterialPurchase) (entities.MaterialPurchase, error) {
	if err := conn(ctx, r.db).Omit(clause.Associations).Save(&p).Error; err != nil {
		return entities.MaterialPurchase{}, err
	}
	return p, nil
}

func (r *MaterialPurchaseGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.MaterialPurchase{}, "id = ?", id).Error
}

func (r *MaterialPurchaseGormRepository) ListByJob(ctx context.Context, jobID string, filter entities.MaterialPurchaseFilter) ([]entities.MaterialPurchase, error) {
	q := conn(ctx, r.db).Preload("Supplier").Preload("Material").Where("job_id = ?", jobID)
	if filter.SupplierID != "" {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.MaterialID != "" {
		q = q.Where("material_id = ?", filter.MaterialID)
	}
	if filter.From != nil {
		q = q.Where("purchase_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("purchase_date <= ?", *filter.To)
	}

	var out []entities.MaterialPurchase
	if err := q.Order("purchase_date DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaterialPurchaseGormRepository) ListBySupplier(ctx context.Context, supplierID string) ([]entities.MaterialPurchase, error) {
	var out []entities.MaterialPurchase
	err := conn(ctx, r.db).Preload("Supplier").Preload("Material").
		Where("supplier_id = ?", supplierID).
		Order("purchase_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
