package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.Payment, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.Payment, error)
	Totals(ctx context.Context) (entities.PaymentTotals, error)
}
