package repository

import (
	"context"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// setActive flips is_active and reports whether a row matched.
func setActive(db *gorm.DB, model any, id string, active bool) (bool, error) {
	res := db.Model(model).Where("id = ?", id).Updates(map[string]any{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	})
	return res.RowsAffected > 0, res.Error
}

func applyActiveFilter(q *gorm.DB, filter entities.CatalogFilter) *gorm.DB {
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	return q
}

// WorkerGormRepository persists the worker catalog.
type WorkerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkerRepository = (*WorkerGormRepository)(nil)

func NewWorkerGormRepository(db *gorm.DB) *WorkerGormRepository {
	return &WorkerGormRepository{db: db}
}

func (r *WorkerGormRepository) Create(ctx context.Context, w entities.Worker) (entities.Worker, error) {
	if err := conn(ctx, r.db).Create(&w).Error; err != nil {
		return entities.Worker{}, err
	}
	return w, nil
}

func (r *WorkerGormRepository) GetByID(ctx context.Context, id string) (entities.Worker, error) {
	var w entities.Worker
	err := conn(ctx, r.db).First(&w, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Worker{}, nil
	}
	if err != nil {
		return entities.Worker{}, err
	}
	return w, nil
}

func (r *WorkerGormRepository) Update(ctx context.Context, w entities.Worker) (entities.Worker, error) {
	if err := conn(ctx, r.db).Save(&w).Error; err != nil {
		return entities.Worker{}, err
	}
	return w, nil
}

func (r *WorkerGormRepository) SetActive(ctx context.Context, id string, active bool) (entities.Worker, error) {
	found, err := setActive(conn(ctx, r.db), &entities.Worker{}, id, active)
	if err != nil || !found {
		return entities.Worker{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *WorkerGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.Worker{}, "id = ?", id).Error
}

func (r *WorkerGormRepository) List(ctx context.Context, filter entities.CatalogFilter) ([]entities.Worker, error) {
	q := applyActiveFilter(conn(ctx, r.db).Model(&entities.Worker{}), filter)
	if filter.RoleType != "" {
		q = q.Where("role_type = ?", filter.RoleType)
	}
	if strings.TrimSpace(filter.Search) != "" {
		p := likePattern(filter.Search)
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ?", p, p, p)
	}

	var out []entities.Worker
	if err := q.Order("first_name ASC, last_name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WorkerGormRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&entities.Worker{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// SupplierGormRepository persists the supplier catalog.
type SupplierGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISupplierRepository = (*SupplierGormRepository)(nil)

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	if err := conn(ctx, r.db).Create(&s).Error; err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	var s entities.Supplier
	err := conn(ctx, r.db).First(&s, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Supplier{}, nil
	}
	if err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	if err := conn(ctx, r.db).Save(&s).Error; err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) SetActive(ctx context.Context, id string, active bool) (entities.Supplier, error) {
	found, err := setActive(conn(ctx, r.db), &entities.Supplier{}, id, active)
	if err != nil || !found {
		return entities.Supplier{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SupplierGormRepository) List(ctx context.Context, filter entities.CatalogFilter) ([]entities.Supplier, error) {
	q := applyActiveFilter(conn(ctx, r.db).Model(&entities.Supplier{}), filter)
	if strings.TrimSpace(filter.Search) != "" {
		p := likePattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(contact_name) LIKE ? OR phone LIKE ?", p, p, p)
	}

	var out []entities.Supplier
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SupplierGormRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&entities.Supplier{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// MaterialGormRepository persists the material catalog.
type MaterialGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMaterialRepository = (*MaterialGormRepository)(nil)

func NewMaterialGormRepository(db *gorm.DB) *MaterialGormRepository {
	return &MaterialGormRepository{db: db}
}

func (r *MaterialGormRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialGormRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	var m entities.Material
	err := conn(ctx, r.db).First(&m, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Material{}, nil
	}
	if err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialGormRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	if err := conn(ctx, r.db).Save(&m).Error; err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialGormRepository) SetActive(ctx context.Context, id string, active bool) (entities.Material, error) {
	found, err := setActive(conn(ctx, r.db), &entities.Material{}, id, active)
	if err != nil || !found {
		return entities.Material{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *MaterialGormRepository) List(ctx context.Context, filter entities.CatalogFilter) ([]entities.Material, error) {
	q := applyActiveFilter(conn(ctx, r.db).Model(&entities.Material{}), filter)
	if strings.TrimSpace(filter.Search) != "" {
		p := likePattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", p, p)
	}

	var out []entities.Material
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
