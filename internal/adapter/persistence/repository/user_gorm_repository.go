package repository

import (
	"context"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	if err := conn(ctx, r.db).Create(&u).Error; err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var u entities.User
	err := conn(ctx, r.db).First(&u, "username = ?", username).Error
	if isNotFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&entities.User{}).Count(&n).Error
	return n, err
}
