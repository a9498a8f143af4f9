package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// IWorkerRepository abstracts persistence for the worker catalog.
//
// SetActive implements archive/activate. Delete is the explicit hard-delete path.

type IWorkerRepository interface {
	Create(ctx context.Context, w entities.Worker) (entities.Worker, error)
	GetByID(ctx context.Context, id string) (entities.Worker, error)
	Update(ctx context.Context, w entities.Worker) (entities.Worker, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Worker, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entities.CatalogFilter) ([]entities.Worker, error)
	CountActive(ctx context.Context) (int64, error)
}
