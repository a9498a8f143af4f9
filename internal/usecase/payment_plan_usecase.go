package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPaymentPlanNotFound    = errors.New("payment plan not found")
	ErrInvalidPaymentPlan     = errors.New("invalid payment plan")
	ErrPaymentPlanAlreadyPaid = errors.New("payment plan already paid")
)

type PaymentPlanInput struct {
	JobID       string
	DueDate     time.Time
	Amount      decimal.Decimal
	Description string
}

type IPaymentPlanUseCase interface {
	Create(ctx context.Context, in PaymentPlanInput) (entities.PaymentPlan, error)
	MarkPaid(ctx context.Context, id string, paidAt *time.Time) (entities.PaymentPlan, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.PaymentPlan, error)
}

type PaymentPlanUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IPaymentPlanUseCase = (*PaymentPlanUseCase)(nil)

func NewPaymentPlanUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentPlanUseCase) Create(ctx context.Context, in PaymentPlanInput) (entities.PaymentPlan, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.PaymentPlan{}, ErrInvalidJobID
	}
	if in.DueDate.IsZero() {
		return entities.PaymentPlan{}, invalid(ErrInvalidPaymentPlan, "due date is required")
	}
	if !in.Amount.IsPositive() {
		return entities.PaymentPlan{}, invalid(ErrInvalidPaymentPlan, "amount must be positive")
	}

	now := u.now()
	p := entities.PaymentPlan{
		ID:          uuid.NewString(),
		JobID:       in.JobID,
		DueDate:     in.DueDate,
		Amount:      in.Amount.Round(2),
		Status:      entities.PaymentPlanStatusPending,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created entities.PaymentPlan
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, in.JobID); err != nil {
			return err
		}
		var err error
		created, err = u.repos.PaymentPlans.Create(ctx, p)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityPaymentPlan,
			entityID: created.ID,
			jobID:    in.JobID,
			metadata: map[string]any{"amount": created.Amount, "due_date": created.DueDate},
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[plan][usecase] create failed", zap.String("job_id", in.JobID), zap.Error(err))
		return entities.PaymentPlan{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityPaymentPlan), "create")
	return created, nil
}

// MarkPaid settles an installment. A nil paidAt means now.
func (u *PaymentPlanUseCase) MarkPaid(ctx context.Context, id string, paidAt *time.Time) (entities.PaymentPlan, error) {
	var updated entities.PaymentPlan
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if p.Status == entities.PaymentPlanStatusPaid {
			return ErrPaymentPlanAlreadyPaid
		}
		at := u.now()
		if paidAt != nil && !paidAt.IsZero() {
			at = *paidAt
		}
		p.Status = entities.PaymentPlanStatusPaid
		p.PaidAt = &at
		p.UpdatedAt = u.now()

		updated, err = u.repos.PaymentPlans.Update(ctx, p)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdateStatus,
			entity:   entities.EntityPaymentPlan,
			entityID: p.ID,
			jobID:    p.JobID,
			details:  "Pending -> Paid",
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[plan][usecase] mark paid failed", zap.String("plan_id", id), zap.Error(err))
		return entities.PaymentPlan{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityPaymentPlan), "mark_paid")
	return updated, nil
}

func (u *PaymentPlanUseCase) Delete(ctx context.Context, id string) error {
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if err := u.repos.PaymentPlans.Delete(ctx, p.ID); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityPaymentPlan,
			entityID: p.ID,
			jobID:    p.JobID,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[plan][usecase] delete failed", zap.String("plan_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityPaymentPlan), "delete")
	return nil
}

// ListByJob reports unpaid installments past their due date as Overdue.
// The stored status is not changed.
func (u *PaymentPlanUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.PaymentPlan, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return nil, err
	}
	plans, err := u.repos.PaymentPlans.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for i := range plans {
		if plans[i].IsOverdue(now) {
			plans[i].Status = entities.PaymentPlanStatusOverdue
		}
	}
	return plans, nil
}

func (u *PaymentPlanUseCase) load(ctx context.Context, id string) (entities.PaymentPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentPlan{}, invalid(ErrInvalidPaymentPlan, "id is required")
	}
	p, err := u.repos.PaymentPlans.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if p.ID == "" {
		return entities.PaymentPlan{}, ErrPaymentPlanNotFound
	}
	return p, nil
}
