package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.Contract, error)
}
