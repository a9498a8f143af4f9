package repository

import (
	"context"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const defaultAuditListLimit = 100

// AuditLogGormRepository stores audit entries next to the business rows so
// they commit or roll back with the mutation they describe.
type AuditLogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IAuditLogRepository = (*AuditLogGormRepository)(nil)

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) Append(ctx context.Context, entry entities.AuditLog) error {
	return conn(ctx, r.db).Create(&entry).Error
}

func (r *AuditLogGormRepository) ListByJob(ctx context.Context, jobID string, limit int) ([]entities.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	var out []entities.AuditLog
	err := conn(ctx, r.db).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
