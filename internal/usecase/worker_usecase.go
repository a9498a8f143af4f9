package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/domain/finance"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerInactive   = errors.New("worker is archived")
	ErrInvalidWorker    = errors.New("invalid worker")
	ErrWorkerHasEntries = errors.New("worker has labor entries or payments")
)

type WorkerInput struct {
	FirstName         string
	LastName          string
	Phone             string
	RoleType          string
	HourlyRateDefault decimal.Decimal
	Notes             string
}

type WorkerQuery struct {
	IsActive *bool
	Search   string
	RoleType string
}

// WorkerStatement is a worker's labor debt across all jobs.
type WorkerStatement struct {
	Worker   entities.Worker       `json:"worker"`
	Earned   decimal.Decimal       `json:"earned"`
	Paid     decimal.Decimal       `json:"paid"`
	Balance  decimal.Decimal       `json:"remaining"`
	Entries  []entities.LaborEntry `json:"labor_entries"`
	Payments []entities.Payment    `json:"payments"`
}

type IWorkerUseCase interface {
	Create(ctx context.Context, in WorkerInput) (entities.Worker, error)
	Update(ctx context.Context, id string, in WorkerInput) (entities.Worker, error)
	Get(ctx context.Context, id string) (entities.Worker, error)
	List(ctx context.Context, q WorkerQuery) ([]entities.Worker, error)
	ListActive(ctx context.Context) ([]entities.Worker, error)
	Archive(ctx context.Context, id string) (entities.Worker, error)
	Activate(ctx context.Context, id string) (entities.Worker, error)
	HardDelete(ctx context.Context, id string) error
	Statement(ctx context.Context, id string) (WorkerStatement, error)
}

type WorkerUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IWorkerUseCase = (*WorkerUseCase)(nil)

func NewWorkerUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *WorkerUseCase {
	return &WorkerUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkerUseCase) Create(ctx context.Context, in WorkerInput) (entities.Worker, error) {
	log := logger.FromContext(ctx)

	role, err := validateWorkerInput(&in)
	if err != nil {
		return entities.Worker{}, err
	}

	now := u.now()
	w := entities.Worker{
		ID:                uuid.NewString(),
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Phone:             in.Phone,
		RoleType:          role,
		HourlyRateDefault: in.HourlyRateDefault,
		IsActive:          true,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var created entities.Worker
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repos.Workers.Create(ctx, w)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityWorker,
			entityID: created.ID,
			details:  created.FullName(),
		})
	})
	if err != nil {
		log.Info("[worker][usecase] create failed", zap.Error(err))
		return entities.Worker{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityWorker), "create")
	log.Info("[worker][usecase] create success", zap.String("worker_id", created.ID))
	return created, nil
}

func (u *WorkerUseCase) Update(ctx context.Context, id string, in WorkerInput) (entities.Worker, error) {
	log := logger.FromContext(ctx)

	role, err := validateWorkerInput(&in)
	if err != nil {
		return entities.Worker{}, err
	}

	var updated entities.Worker
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		w, err := loadWorker(ctx, u.repos.Workers, id)
		if err != nil {
			return err
		}
		w.FirstName = in.FirstName
		w.LastName = in.LastName
		w.Phone = in.Phone
		w.RoleType = role
		w.HourlyRateDefault = in.HourlyRateDefault
		w.Notes = in.Notes
		w.UpdatedAt = u.now()

		updated, err = u.repos.Workers.Update(ctx, w)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityWorker,
			entityID: w.ID,
			details:  w.FullName(),
		})
	})
	if err != nil {
		log.Info("[worker][usecase] update failed", zap.String("worker_id", id), zap.Error(err))
		return entities.Worker{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityWorker), "update")
	return updated, nil
}

func (u *WorkerUseCase) Get(ctx context.Context, id string) (entities.Worker, error) {
	return loadWorker(ctx, u.repos.Workers, id)
}

func (u *WorkerUseCase) List(ctx context.Context, q WorkerQuery) ([]entities.Worker, error) {
	filter := entities.CatalogFilter{IsActive: q.IsActive, Search: strings.TrimSpace(q.Search)}
	if r := strings.TrimSpace(q.RoleType); r != "" {
		role, ok := entities.ParseWorkerRoleType(r)
		if !ok {
			return nil, invalid(ErrInvalidWorker, "unknown role type %q", q.RoleType)
		}
		filter.RoleType = role
	}
	return u.repos.Workers.List(ctx, filter)
}

func (u *WorkerUseCase) ListActive(ctx context.Context) ([]entities.Worker, error) {
	active := true
	return u.repos.Workers.List(ctx, entities.CatalogFilter{IsActive: &active})
}

// Archive hides the worker from new labor entries. Existing entries keep
// referencing it.
func (u *WorkerUseCase) Archive(ctx context.Context, id string) (entities.Worker, error) {
	return u.setActive(ctx, id, false)
}

func (u *WorkerUseCase) Activate(ctx context.Context, id string) (entities.Worker, error) {
	return u.setActive(ctx, id, true)
}

func (u *WorkerUseCase) setActive(ctx context.Context, id string, active bool) (entities.Worker, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, invalid(ErrInvalidWorker, "id is required")
	}
	action := entities.AuditActionArchive
	if active {
		action = entities.AuditActionActivate
	}

	var w entities.Worker
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		w, err = u.repos.Workers.SetActive(ctx, id, active)
		if err != nil {
			return err
		}
		if w.ID == "" {
			return ErrWorkerNotFound
		}
		return u.audit.record(ctx, auditEvent{action: action, entity: entities.EntityWorker, entityID: id})
	})
	if err != nil {
		log.Info("[worker][usecase] set active failed", zap.String("worker_id", id), zap.Bool("active", active), zap.Error(err))
		return entities.Worker{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityWorker), strings.ToLower(string(action)))
	return w, nil
}

// HardDelete erases a worker that was never used. Workers referenced by
// labor entries or payments can only be archived.
func (u *WorkerUseCase) HardDelete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		w, err := loadWorker(ctx, u.repos.Workers, id)
		if err != nil {
			return err
		}
		count, err := u.repos.LaborEntries.CountByWorker(ctx, w.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrWorkerHasEntries
		}
		payments, err := u.repos.Payments.ListByWorker(ctx, w.ID)
		if err != nil {
			return err
		}
		if len(payments) > 0 {
			return ErrWorkerHasEntries
		}
		if err := u.repos.Workers.Delete(ctx, w.ID); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionHardDelete,
			entity:   entities.EntityWorker,
			entityID: w.ID,
			details:  w.FullName(),
		})
	})
	if err != nil {
		log.Info("[worker][usecase] hard delete failed", zap.String("worker_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityWorker), "hard_delete")
	log.Info("[worker][usecase] hard delete success", zap.String("worker_id", id))
	return nil
}

// Statement sums what the worker earned on every job against the expense
// payments made to them.
func (u *WorkerUseCase) Statement(ctx context.Context, id string) (WorkerStatement, error) {
	w, err := loadWorker(ctx, u.repos.Workers, id)
	if err != nil {
		return WorkerStatement{}, err
	}
	entries, err := u.repos.LaborEntries.ListByWorker(ctx, w.ID)
	if err != nil {
		return WorkerStatement{}, err
	}
	payments, err := u.repos.Payments.ListByWorker(ctx, w.ID)
	if err != nil {
		return WorkerStatement{}, err
	}

	st := WorkerStatement{
		Worker:   w,
		Earned:   decimal.Zero,
		Paid:     decimal.Zero,
		Balance:  decimal.Zero,
		Entries:  entries,
		Payments: payments,
	}
	for _, d := range finance.WorkerDebts(entries, payments) {
		if d.WorkerID == w.ID {
			st.Earned, st.Paid, st.Balance = d.Earned, d.Paid, d.Remaining
		}
	}
	return st, nil
}

func loadWorker(ctx context.Context, workers interfaces.IWorkerRepository, id string) (entities.Worker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, invalid(ErrInvalidWorker, "id is required")
	}
	w, err := workers.GetByID(ctx, id)
	if err != nil {
		return entities.Worker{}, err
	}
	if w.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	return w, nil
}

func validateWorkerInput(in *WorkerInput) (entities.WorkerRoleType, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.FirstName == "" {
		return "", invalid(ErrInvalidWorker, "first name is required")
	}
	role, ok := entities.ParseWorkerRoleType(in.RoleType)
	if !ok {
		return "", invalid(ErrInvalidWorker, "role type must be Master or Laborer")
	}
	if in.HourlyRateDefault.IsNegative() {
		return "", invalid(ErrInvalidWorker, "hourly rate must not be negative")
	}
	return role, nil
}
