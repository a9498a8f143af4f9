package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// ILaborEntryRepository abstracts persistence for LaborEntry.

type ILaborEntryRepository interface {
	Create(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error)
	GetByID(ctx context.Context, id string) (entities.LaborEntry, error)
	Update(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string, filter entities.LaborEntryFilter) ([]entities.LaborEntry, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.LaborEntry, error)
	CountByWorker(ctx context.Context, workerID string) (int64, error)
}
