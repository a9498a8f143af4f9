package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	Count(ctx context.Context) (int64, error)
}
