package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// IOfferRepository abstracts persistence for Offer and its items.
//
// Update replaces the item list as a whole.

type IOfferRepository interface {
	Create(ctx context.Context, o entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	Update(ctx context.Context, o entities.Offer) (entities.Offer, error)
	UpdateStatus(ctx context.Context, id string, status entities.OfferStatus) (entities.Offer, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error)
}
