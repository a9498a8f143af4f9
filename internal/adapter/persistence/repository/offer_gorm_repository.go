package repository

import (
	"context"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type OfferGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOfferRepository = (*OfferGormRepository)(nil)

func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// Create inserts the offer and its items.
func (r *OfferGormRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	if err := conn(ctx, r.db).Create(&o).Error; err != nil {
		return entities.Offer{}, err
	}
	return o, nil
}

func (r *OfferGormRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	var o entities.Offer
	err := conn(ctx, r.db).Preload("Items", preloadItems).First(&o, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Offer{}, nil
	}
	if err != nil {
		return entities.Offer{}, err
	}
	return o, nil
}

// Update rewrites the offer header and replaces all items.
func (r *OfferGormRepository) Update(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", o.ID).Delete(&entities.OfferItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(&o).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		return tx.Create(&o.Items).Error
	})
	if err != nil {
		return entities.Offer{}, err
	}
	return o, nil
}

func (r *OfferGormRepository) UpdateStatus(ctx context.Context, id string, status entities.OfferStatus) (entities.Offer, error) {
	res := conn(ctx, r.db).Model(&entities.Offer{}).Where("id = ?", id).Updates(map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Offer{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Offer{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *OfferGormRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&entities.OfferItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Offer{}, "id = ?", id).Error
	})
}

func (r *OfferGormRepository) ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error) {
	var out []entities.Offer
	err := conn(ctx, r.db).Preload("Items", preloadItems).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
