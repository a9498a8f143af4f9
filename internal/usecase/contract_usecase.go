package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrContractNotFound = errors.New("contract not found")
	ErrInvalidContract  = errors.New("invalid contract")
)

type ContractInput struct {
	JobID       string
	ContractNo  string
	Title       string
	TotalAmount decimal.Decimal
	Currency    string
	Notes       string
}

type IContractUseCase interface {
	Create(ctx context.Context, in ContractInput) (entities.Contract, error)
	Update(ctx context.Context, id string, in ContractInput) (entities.Contract, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.Contract, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *ContractUseCase {
	return &ContractUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *ContractUseCase) Create(ctx context.Context, in ContractInput) (entities.Contract, error) {
	log := logger.FromContext(ctx)

	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.Contract{}, ErrInvalidJobID
	}
	currency, err := validateContractInput(in)
	if err != nil {
		return entities.Contract{}, err
	}

	now := u.now()
	c := entities.Contract{
		ID:          uuid.NewString(),
		JobID:       in.JobID,
		ContractNo:  strings.TrimSpace(in.ContractNo),
		Title:       strings.TrimSpace(in.Title),
		Status:      entities.ContractStatusDraft,
		TotalAmount: in.TotalAmount.Round(2),
		Currency:    currency,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created entities.Contract
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, in.JobID); err != nil {
			return err
		}
		var err error
		created, err = u.repos.Contracts.Create(ctx, c)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityContract,
			entityID: created.ID,
			jobID:    in.JobID,
			details:  fmt.Sprintf("%s %s", created.TotalAmount, created.Currency),
		})
	})
	if err != nil {
		log.Info("[contract][usecase] create failed", zap.String("job_id", in.JobID), zap.Error(err))
		return entities.Contract{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityContract), "create")
	return created, nil
}

func (u *ContractUseCase) Update(ctx context.Context, id string, in ContractInput) (entities.Contract, error) {
	currency, err := validateContractInput(in)
	if err != nil {
		return entities.Contract{}, err
	}

	var updated entities.Contract
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		c.ContractNo = strings.TrimSpace(in.ContractNo)
		c.Title = strings.TrimSpace(in.Title)
		c.TotalAmount = in.TotalAmount.Round(2)
		c.Currency = currency
		c.Notes = strings.TrimSpace(in.Notes)
		c.UpdatedAt = u.now()

		updated, err = u.repos.Contracts.Update(ctx, c)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityContract,
			entityID: c.ID,
			jobID:    c.JobID,
			metadata: map[string]any{"total_amount": c.TotalAmount},
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[contract][usecase] update failed", zap.String("contract_id", id), zap.Error(err))
		return entities.Contract{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityContract), "update")
	return updated, nil
}

// UpdateStatus stamps SignedAt the first time a contract becomes Signed.
func (u *ContractUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Contract, error) {
	st, ok := entities.ParseContractStatus(status)
	if !ok {
		return entities.Contract{}, invalid(ErrInvalidContract, "unknown contract status %q", status)
	}

	var updated entities.Contract
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		from := c.Status
		c.Status = st
		c.UpdatedAt = u.now()
		if st == entities.ContractStatusSigned && c.SignedAt == nil {
			signedAt := c.UpdatedAt
			c.SignedAt = &signedAt
		}

		updated, err = u.repos.Contracts.Update(ctx, c)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdateStatus,
			entity:   entities.EntityContract,
			entityID: c.ID,
			jobID:    c.JobID,
			details:  fmt.Sprintf("%s -> %s", from, st),
			metadata: map[string]any{"from": from, "to": st},
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[contract][usecase] update status failed", zap.String("contract_id", id), zap.Error(err))
		return entities.Contract{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityContract), "update_status")
	return updated, nil
}

func (u *ContractUseCase) Delete(ctx context.Context, id string) error {
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if err := u.repos.Contracts.Delete(ctx, c.ID); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityContract,
			entityID: c.ID,
			jobID:    c.JobID,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[contract][usecase] delete failed", zap.String("contract_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityContract), "delete")
	return nil
}

func (u *ContractUseCase) Get(ctx context.Context, id string) (entities.Contract, error) {
	return u.load(ctx, id)
}

func (u *ContractUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Contract, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return nil, err
	}
	return u.repos.Contracts.ListByJob(ctx, job.ID)
}

func (u *ContractUseCase) load(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, invalid(ErrInvalidContract, "id is required")
	}
	c, err := u.repos.Contracts.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func validateContractInput(in ContractInput) (entities.Currency, error) {
	if in.TotalAmount.IsNegative() {
		return "", invalid(ErrInvalidContract, "total amount must not be negative")
	}
	return parseCurrency(in.Currency, ErrInvalidContract)
}
