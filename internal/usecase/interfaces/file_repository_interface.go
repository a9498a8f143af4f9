package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// IFileRepository stores file metadata only.

type IFileRepository interface {
	Create(ctx context.Context, f entities.File) (entities.File, error)
	GetByID(ctx context.Context, id string) (entities.File, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.File, error)
}
