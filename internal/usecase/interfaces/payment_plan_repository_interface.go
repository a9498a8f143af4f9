package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

type IPaymentPlanRepository interface {
	Create(ctx context.Context, p entities.PaymentPlan) (entities.PaymentPlan, error)
	GetByID(ctx context.Context, id string) (entities.PaymentPlan, error)
	Update(ctx context.Context, p entities.PaymentPlan) (entities.PaymentPlan, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.PaymentPlan, error)
}
