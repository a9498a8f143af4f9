package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrLaborEntryNotFound = errors.New("labor entry not found")
	ErrInvalidLaborEntry  = errors.New("invalid labor entry")
)

var minLaborHours = decimal.RequireFromString("0.5")

type LaborEntryInput struct {
	JobID       string
	WorkerID    string
	WorkDate    time.Time
	Hours       decimal.Decimal
	HourlyRate  *decimal.Decimal
	Description string
}

// LaborEntryPatch changes only the fields that are set.
type LaborEntryPatch struct {
	WorkerID    *string
	WorkDate    *time.Time
	Hours       *decimal.Decimal
	HourlyRate  *decimal.Decimal
	Description *string
}

type LaborEntryQuery struct {
	WorkerID string
	RoleType string
	From     *time.Time
	To       *time.Time
}

type LaborEntryList struct {
	Entries []entities.LaborEntry `json:"entries"`
	Summary finance.LaborSummary  `json:"summary"`
}

type ILaborEntryUseCase interface {
	Create(ctx context.Context, in LaborEntryInput) (entities.LaborEntry, error)
	Update(ctx context.Context, id string, patch LaborEntryPatch) (entities.LaborEntry, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.LaborEntry, error)
	ListByJob(ctx context.Context, jobID string, q LaborEntryQuery) (LaborEntryList, error)
}

type LaborEntryUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ ILaborEntryUseCase = (*LaborEntryUseCase)(nil)

func NewLaborEntryUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *LaborEntryUseCase {
	return &LaborEntryUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create logs hours against a job. The row total is fixed here and the job's
// labor total is recomputed in the same transaction.
func (u *LaborEntryUseCase) Create(ctx context.Context, in LaborEntryInput) (entities.LaborEntry, error) {
	log := logger.FromContext(ctx)

	in.JobID = strings.TrimSpace(in.JobID)
	in.WorkerID = strings.TrimSpace(in.WorkerID)
	in.Description = strings.TrimSpace(in.Description)
	if in.JobID == "" {
		return entities.LaborEntry{}, ErrInvalidJobID
	}
	if in.WorkerID == "" {
		return entities.LaborEntry{}, invalid(ErrInvalidLaborEntry, "worker is required")
	}
	if in.WorkDate.IsZero() {
		return entities.LaborEntry{}, invalid(ErrInvalidLaborEntry, "work date is required")
	}
	if err := validateLaborAmounts(in.Hours, in.HourlyRate); err != nil {
		return entities.LaborEntry{}, err
	}

	var created entities.LaborEntry
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, in.JobID); err != nil {
			return err
		}
		worker, err := loadWorker(ctx, u.repos.Workers, in.WorkerID)
		if err != nil {
			return err
		}
		if !worker.IsActive {
			return ErrWorkerInactive
		}

		rate := worker.HourlyRateDefault
		if in.HourlyRate != nil {
			rate = *in.HourlyRate
		}
		now := u.now()
		entry := entities.LaborEntry{
			ID:          uuid.NewString(),
			JobID:       in.JobID,
			WorkerID:    worker.ID,
			WorkDate:    in.WorkDate,
			Hours:       in.Hours,
			HourlyRate:  rate,
			TotalAmount: finance.LaborAmount(in.Hours, rate),
			Description: in.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		created, err = u.repos.LaborEntries.Create(ctx, entry)
		if err != nil {
			return err
		}
		if err := recomputeCost(ctx, u.repos.Jobs, u.metrics, in.JobID, entities.CostCategoryLabor); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityLaborEntry,
			entityID: created.ID,
			jobID:    in.JobID,
			details:  fmt.Sprintf("%s h x %s for %s", created.Hours, created.HourlyRate, worker.FullName()),
			metadata: map[string]any{"worker_id": worker.ID, "total_amount": created.TotalAmount},
		})
	})
	if err != nil {
		log.Info("[labor][usecase] create failed", zap.String("job_id", in.JobID), zap.Error(err))
		return entities.LaborEntry{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityLaborEntry), "create")
	log.Info("[labor][usecase] create success", zap.String("job_id", in.JobID), zap.String("labor_entry_id", created.ID))
	return created, nil
}

// Update merges the patch, recomputes the row total from the merged values
// and then the job's labor total.
func (u *LaborEntryUseCase) Update(ctx context.Context, id string, patch LaborEntryPatch) (entities.LaborEntry, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborEntry{}, invalid(ErrInvalidLaborEntry, "id is required")
	}

	var updated entities.LaborEntry
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := u.repos.LaborEntries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry.ID == "" {
			return ErrLaborEntryNotFound
		}

		if patch.WorkerID != nil {
			workerID := strings.TrimSpace(*patch.WorkerID)
			if workerID != entry.WorkerID {
				worker, err := loadWorker(ctx, u.repos.Workers, workerID)
				if err != nil {
					return err
				}
				if !worker.IsActive {
					return ErrWorkerInactive
				}
				entry.WorkerID = worker.ID
				entry.Worker = nil
			}
		}
		if patch.WorkDate != nil {
			if patch.WorkDate.IsZero() {
				return invalid(ErrInvalidLaborEntry, "work date is required")
			}
			entry.WorkDate = *patch.WorkDate
		}
		if patch.Hours != nil {
			entry.Hours = *patch.Hours
		}
		if patch.HourlyRate != nil {
			entry.HourlyRate = *patch.HourlyRate
		}
		if patch.Description != nil {
			entry.Description = strings.TrimSpace(*patch.Description)
		}
		if err := validateLaborAmounts(entry.Hours, &entry.HourlyRate); err != nil {
			return err
		}

		entry.TotalAmount = finance.LaborAmount(entry.Hours, entry.HourlyRate)
		entry.UpdatedAt = u.now()
		updated, err = u.repos.LaborEntries.Update(ctx, entry)
		if err != nil {
			return err
		}
		if err := recomputeCost(ctx, u.repos.Jobs, u.metrics, entry.JobID, entities.CostCategoryLabor); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityLaborEntry,
			entityID: id,
			jobID:    entry.JobID,
			metadata: map[string]any{"total_amount": entry.TotalAmount},
		})
	})
	if err != nil {
		log.Info("[labor][usecase] update failed", zap.String("labor_entry_id", id), zap.Error(err))
		return entities.LaborEntry{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityLaborEntry), "update")
	return updated, nil
}

func (u *LaborEntryUseCase) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidLaborEntry, "id is required")
	}

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := u.repos.LaborEntries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry.ID == "" {
			return ErrLaborEntryNotFound
		}
		if err := u.repos.LaborEntries.Delete(ctx, id); err != nil {
			return err
		}
		if err := recomputeCost(ctx, u.repos.Jobs, u.metrics, entry.JobID, entities.CostCategoryLabor); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityLaborEntry,
			entityID: id,
			jobID:    entry.JobID,
			metadata: map[string]any{"total_amount": entry.TotalAmount},
		})
	})
	if err != nil {
		log.Info("[labor][usecase] delete failed", zap.String("labor_entry_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityLaborEntry), "delete")
	return nil
}

func (u *LaborEntryUseCase) Get(ctx context.Context, id string) (entities.LaborEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborEntry{}, invalid(ErrInvalidLaborEntry, "id is required")
	}
	entry, err := u.repos.LaborEntries.GetByID(ctx, id)
	if err != nil {
		return entities.LaborEntry{}, err
	}
	if entry.ID == "" {
		return entities.LaborEntry{}, ErrLaborEntryNotFound
	}
	return entry, nil
}

func (u *LaborEntryUseCase) ListByJob(ctx context.Context, jobID string, q LaborEntryQuery) (LaborEntryList, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return LaborEntryList{}, err
	}

	filter := entities.LaborEntryFilter{
		WorkerID:  strings.TrimSpace(q.WorkerID),
		DateRange: entities.DateRange{From: q.From, To: q.To},
	}
	if r := strings.TrimSpace(q.RoleType); r != "" {
		role, ok := entities.ParseWorkerRoleType(r)
		if !ok {
			return LaborEntryList{}, invalid(ErrInvalidLaborEntry, "unknown role type %q", q.RoleType)
		}
		filter.RoleType = role
	}

	entries, err := u.repos.LaborEntries.ListByJob(ctx, job.ID, filter)
	if err != nil {
		return LaborEntryList{}, err
	}
	return LaborEntryList{Entries: entries, Summary: finance.SummarizeLabor(entries)}, nil
}

func validateLaborAmounts(hours decimal.Decimal, rate *decimal.Decimal) error {
	if hours.LessThan(minLaborHours) {
		return invalid(ErrInvalidLaborEntry, "hours must be at least %s", minLaborHours)
	}
	if rate != nil && rate.IsNegative() {
		return invalid(ErrInvalidLaborEntry, "hourly rate must not be negative")
	}
	return nil
}
