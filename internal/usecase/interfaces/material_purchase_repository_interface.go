package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// IMaterialPurchaseRepository abstracts persistence for MaterialPurchase.

type IMaterialPurchaseRepository interface {
	Create(ctx context.Context, p entities.MaterialPurchase) (entities.MaterialPurchase, error)
	GetByID(ctx context.Context, id string) (entities.MaterialPurchase, error)
	Update(ctx context.Context, p entities.MaterialPurchase) (entities.MaterialPurchase, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string, filter entities.MaterialPurchaseFilter) ([]entities.MaterialPurchase, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]entities.MaterialPurchase, error)
}
