package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Material, error)
	List(ctx context.Context, filter entities.CatalogFilter) ([]entities.Material, error)
}
