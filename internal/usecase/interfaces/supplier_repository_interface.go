package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Supplier, error)
	List(ctx context.Context, filter entities.CatalogFilter) ([]entities.Supplier, error)
	CountActive(ctx context.Context) (int64, error)
}
