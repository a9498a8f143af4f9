package repository

import (
	"context"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ContractGormRepository persists contracts.
type ContractGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IContractRepository = (*ContractGormRepository)(nil)

func NewContractGormRepository(db *gorm.DB) *ContractGormRepository {
	return &ContractGormRepository{db: db}
}

func (r *ContractGormRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if err := conn(ctx, r.db).Create(&c).Error; err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractGormRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	var c entities.Contract
	err := conn(ctx, r.db).First(&c, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Contract{}, nil
	}
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractGormRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if err := conn(ctx, r.db).Save(&c).Error; err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.Contract{}, "id = ?", id).Error
}

func (r *ContractGormRepository) ListByJob(ctx context.Context, jobID string) ([]entities.Contract, error) {
	var out []entities.Contract
	if err := conn(ctx, r.db).Where("job_id = ?", jobID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentPlanGormRepository persists customer installments.
type PaymentPlanGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentPlanRepository = (*PaymentPlanGormRepository)(nil)

func NewPaymentPlanGormRepository(db *gorm.DB) *PaymentPlanGormRepository {
	return &PaymentPlanGormRepository{db: db}
}

func (r *PaymentPlanGormRepository) Create(ctx context.Context, p entities.PaymentPlan) (entities.PaymentPlan, error) {
	if err := conn(ctx, r.db).Create(&p).Error; err != nil {
		return entities.PaymentPlan{}, err
	}
	return p, nil
}

func (r *PaymentPlanGormRepository) GetByID(ctx context.Context, id string) (entities.PaymentPlan, error) {
	var p entities.PaymentPlan
	err := conn(ctx, r.db).First(&p, "id = ?", id).Error
	if isNotFound(err) {
		return entities.PaymentPlan{}, nil
	}
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	return p, nil
}

func (r *PaymentPlanGormRepository) Update(ctx context.Context, p entities.PaymentPlan) (entities.PaymentPlan, error) {
	if err := conn(ctx, r.db).Save(&p).Error; err != nil {
		return entities.PaymentPlan{}, err
	}
	return p, nil
}

func (r *PaymentPlanGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.PaymentPlan{}, "id = ?", id).Error
}

func (r *PaymentPlanGormRepository) ListByJob(ctx context.Context, jobID string) ([]entities.PaymentPlan, error) {
	var out []entities.PaymentPlan
	if err := conn(ctx, r.db).Where("job_id = ?", jobID).Order("due_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FileGormRepository persists file metadata.
type FileGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IFileRepository = (*FileGormRepository)(nil)

func NewFileGormRepository(db *gorm.DB) *FileGormRepository {
	return &FileGormRepository{db: db}
}

func (r *FileGormRepository) Create(ctx context.Context, f entities.File) (entities.File, error) {
	if err := conn(ctx, r.db).Create(&f).Error; err != nil {
		return entities.File{}, err
	}
	return f, nil
}

func (r *FileGormRepository) GetByID(ctx context.Context, id string) (entities.File, error) {
	var f entities.File
	err := conn(ctx, r.db).First(&f, "id = ?", id).Error
	if isNotFound(err) {
		return entities.File{}, nil
	}
	if err != nil {
		return entities.File{}, err
	}
	return f, nil
}

func (r *FileGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Delete(&entities.File{}, "id = ?", id).Error
}

func (r *FileGormRepository) ListByJob(ctx context.Context, jobID string) ([]entities.File, error) {
	var out []entities.File
	if err := conn(ctx, r.db).Where("job_id = ?", jobID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
