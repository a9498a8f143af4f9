package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/domain/finance"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrInvalidJob       = errors.New("invalid job")
	ErrInvalidJobStatus = errors.New("invalid job status")
	ErrReportRenderer   = errors.New("report renderer not configured")
)

// JobInput carries the descriptive fields of a job. Status and running
// totals are not part of it.
type JobInput struct {
	Title           string
	Description     string
	CustomerName    string
	CustomerSurname string
	Company         string
	NationalID      string
	TaxNumber       string
	Phone           string
	Email           string
	City            string
	District        string
	Address         string
	BillingTitle    string
	DeliveryAddress string
	Notes           string
	Tags            []string
	Priority        string
	StartDate       *time.Time
	DueDate         *time.Time
}

// JobDetail is a job with its financial view computed from current rows.
type JobDetail struct {
	Job               entities.Job            `json:"job"`
	Financials        finance.Summary         `json:"financials"`
	WorkerBreakdown   []finance.WorkerTotal   `json:"worker_breakdown"`
	SupplierBreakdown []finance.SupplierTotal `json:"supplier_breakdown"`
	WorkerDebts       []finance.WorkerDebt    `json:"worker_debts"`
	Progress          int                     `json:"progress"`
	OverduePlans      []entities.PaymentPlan  `json:"overdue_plans"`
	UpcomingPlans     []entities.PaymentPlan  `json:"upcoming_plans"`
}

// ReportFile is a rendered, downloadable report.
type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

type IJobUseCase interface {
	Create(ctx context.Context, in JobInput) (entities.Job, error)
	Update(ctx context.Context, id string, in JobInput) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Job, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, status, priority, search string) ([]entities.Job, error)
	Summary(ctx context.Context, id string) (JobDetail, error)
	ExportReport(ctx context.Context, id string) (ReportFile, error)
}

type JobUseCase struct {
	repos    Repositories
	audit    auditor
	renderer interfaces.IJobReportRenderer
	metrics  interfaces.IMetricsRecorder
	strict   bool
	now      func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

// NewJobUseCase builds the job use case. With strictTransitions set, status
// changes must follow the lifecycle graph; otherwise any label may be set.
func NewJobUseCase(repos Repositories, renderer interfaces.IJobReportRenderer, metrics interfaces.IMetricsRecorder, strictTransitions bool) *JobUseCase {
	return &JobUseCase{
		repos:    repos,
		audit:    newAuditor(repos.AuditLogs),
		renderer: renderer,
		metrics:  recorderOrNoop(metrics),
		strict:   strictTransitions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *JobUseCase) Create(ctx context.Context, in JobInput) (entities.Job, error) {
	log := logger.FromContext(ctx)

	in = normalizeJobInput(in)
	priority, err := validateJobInput(in)
	if err != nil {
		log.Info("[job][usecase] create rejected", zap.Error(err))
		return entities.Job{}, err
	}
	tags, err := encodeTags(in.Tags)
	if err != nil {
		return entities.Job{}, err
	}

	now := u.now()
	job := entities.Job{ID: uuid.NewString(), Status: entities.JobStatusNew, CreatedAt: now, UpdatedAt: now}
	applyJobInput(&job, in, priority, tags)

	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		seq, err := u.repos.Jobs.NextReferenceSequence(ctx, now.Year())
		if err != nil {
			return err
		}
		job.ReferenceCode = fmt.Sprintf("JOB-%d-%04d", now.Year(), seq)

		created, err := u.repos.Jobs.Create(ctx, job)
		if err != nil {
			return err
		}
		job = created

		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityJob,
			entityID: job.ID,
			jobID:    job.ID,
			details:  fmt.Sprintf("job %s created", job.ReferenceCode),
		})
	})
	if err != nil {
		log.Error("[job][usecase] create failed", zap.Error(err))
		return entities.Job{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityJob), "create")
	log.Info("[job][usecase] create success", zap.String("job_id", job.ID), zap.String("reference_code", job.ReferenceCode))
	return job, nil
}

func (u *JobUseCase) Update(ctx context.Context, id string, in JobInput) (entities.Job, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	in = normalizeJobInput(in)
	priority, err := validateJobInput(in)
	if err != nil {
		return entities.Job{}, err
	}
	tags, err := encodeTags(in.Tags)
	if err != nil {
		return entities.Job{}, err
	}

	var updated entities.Job
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repos.Jobs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrJobNotFound
		}

		applyJobInput(&current, in, priority, tags)
		current.UpdatedAt = u.now()
		updated, err = u.repos.Jobs.Update(ctx, current)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrJobNotFound
		}

		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityJob,
			entityID: id,
			jobID:    id,
			details:  fmt.Sprintf("job %s updated", updated.ReferenceCode),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrJobNotFound) {
			log.Error("[job][usecase] update failed", zap.String("job_id", id), zap.Error(err))
		}
		return entities.Job{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityJob), "update")
	return updated, nil
}

// UpdateStatus sets the job status and records the change with its previous
// value in the audit log.
func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Job, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	next, ok := entities.ParseJobStatus(status)
	if !ok {
		return entities.Job{}, invalid(ErrInvalidJobStatus, "unknown status %q", status)
	}

	var updated entities.Job
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repos.Jobs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrJobNotFound
		}
		if u.strict {
			if err := entities.ValidateTransition(current.Status, next); err != nil {
				return err
			}
		}

		updated, err = u.repos.Jobs.UpdateStatus(ctx, id, next)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrJobNotFound
		}

		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdateStatus,
			entity:   entities.EntityJob,
			entityID: id,
			jobID:    id,
			details:  fmt.Sprintf("%s -> %s", current.Status, next),
			metadata: map[string]any{"from": current.Status, "to": next},
		})
	})
	if err != nil {
		log.Info("[job][usecase] status change failed", zap.String("job_id", id), zap.String("status", string(next)), zap.Error(err))
		return entities.Job{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityJob), "update_status")
	log.Info("[job][usecase] status changed", zap.String("job_id", id), zap.String("status", string(next)))
	return updated, nil
}

// Delete erases the job and everything recorded against it. The audit
// history of the job is kept.
func (u *JobUseCase) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repos.Jobs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrJobNotFound
		}
		if err := u.repos.Jobs.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityJob,
			entityID: id,
			jobID:    id,
			details:  fmt.Sprintf("job %s deleted", current.ReferenceCode),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrJobNotFound) {
			log.Error("[job][usecase] delete failed", zap.String("job_id", id), zap.Error(err))
		}
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityJob), "delete")
	return nil
}

func (u *JobUseCase) Get(ctx context.Context, id string) (entities.Job, error) {
	return loadJob(ctx, u.repos.Jobs, id)
}

func (u *JobUseCase) List(ctx context.Context, status, priority, search string) ([]entities.Job, error) {
	filter := entities.JobFilter{Search: strings.TrimSpace(search)}
	if s := strings.TrimSpace(status); s != "" {
		st, ok := entities.ParseJobStatus(s)
		if !ok {
			return nil, invalid(ErrInvalidJobStatus, "unknown status %q", status)
		}
		filter.Status = st
	}
	if p := strings.TrimSpace(priority); p != "" {
		pr, ok := entities.ParseJobPriority(p)
		if !ok {
			return nil, invalid(ErrInvalidJob, "unknown priority %q", priority)
		}
		filter.Priority = pr
	}
	return u.repos.Jobs.List(ctx, filter)
}

// Summary derives the financial view of the job from its current rows.
func (u *JobUseCase) Summary(ctx context.Context, id string) (JobDetail, error) {
	rows, err := u.loadJobRows(ctx, id)
	if err != nil {
		return JobDetail{}, err
	}

	overdue, upcoming := finance.ClassifyPlans(rows.plans, u.now())
	return JobDetail{
		Job:               rows.job,
		Financials:        rows.summary(),
		WorkerBreakdown:   finance.WorkerBreakdown(rows.labor),
		SupplierBreakdown: finance.SupplierBreakdown(rows.purchases),
		WorkerDebts:       finance.WorkerDebts(rows.labor, rows.payments),
		Progress:          rows.job.Status.Progress(),
		OverduePlans:      overdue,
		UpcomingPlans:     upcoming,
	}, nil
}

// ExportReport renders the job's financial report as a downloadable file.
func (u *JobUseCase) ExportReport(ctx context.Context, id string) (ReportFile, error) {
	if u.renderer == nil {
		return ReportFile{}, ErrReportRenderer
	}
	rows, err := u.loadJobRows(ctx, id)
	if err != nil {
		return ReportFile{}, err
	}

	content, err := u.renderer.RenderJobReport(finance.JobReport{
		GeneratedAt: u.now(),
		Job:         rows.job,
		Summary:     rows.summary(),
		Labor:       rows.labor,
		Purchases:   rows.purchases,
		Payments:    rows.payments,
		Workers:     finance.WorkerBreakdown(rows.labor),
		Suppliers:   finance.SupplierBreakdown(rows.purchases),
	})
	if err != nil {
		logger.FromContext(ctx).Error("[job][usecase] report render failed", zap.String("job_id", rows.job.ID), zap.Error(err))
		return ReportFile{}, err
	}

	return ReportFile{
		FileName:    rows.job.ReferenceCode + u.renderer.FileExtension(),
		ContentType: u.renderer.ContentType(),
		Content:     content,
	}, nil
}

type jobRows struct {
	job       entities.Job
	labor     []entities.LaborEntry
	purchases []entities.MaterialPurchase
	payments  []entities.Payment
	offers    []entities.Offer
	contracts []entities.Contract
	plans     []entities.PaymentPlan
}

func (r jobRows) summary() finance.Summary {
	return finance.Derive(finance.Input{
		Job:       r.job,
		Offers:    r.offers,
		Contracts: r.contracts,
		Payments:  r.payments,
	})
}

func (u *JobUseCase) loadJobRows(ctx context.Context, id string) (jobRows, error) {
	job, err := loadJob(ctx, u.repos.Jobs, id)
	if err != nil {
		return jobRows{}, err
	}
	rows := jobRows{job: job}

	if rows.labor, err = u.repos.LaborEntries.ListByJob(ctx, job.ID, entities.LaborEntryFilter{}); err != nil {
		return jobRows{}, err
	}
	if rows.purchases, err = u.repos.MaterialPurchases.ListByJob(ctx, job.ID, entities.MaterialPurchaseFilter{}); err != nil {
		return jobRows{}, err
	}
	if rows.payments, err = u.repos.Payments.ListByJob(ctx, job.ID); err != nil {
		return jobRows{}, err
	}
	if rows.offers, err = u.repos.Offers.ListByJob(ctx, job.ID); err != nil {
		return jobRows{}, err
	}
	if rows.contracts, err = u.repos.Contracts.ListByJob(ctx, job.ID); err != nil {
		return jobRows{}, err
	}
	if rows.plans, err = u.repos.PaymentPlans.ListByJob(ctx, job.ID); err != nil {
		return jobRows{}, err
	}
	return rows, nil
}

// loadJob returns ErrJobNotFound for unknown ids.
func loadJob(ctx context.Context, jobs interfaces.IJobRepository, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func normalizeJobInput(in JobInput) JobInput {
	for _, f := range []*string{
		&in.Title, &in.Description, &in.CustomerName, &in.CustomerSurname, &in.Company,
		&in.NationalID, &in.TaxNumber, &in.Phone, &in.Email, &in.City, &in.District,
		&in.Address, &in.BillingTitle, &in.DeliveryAddress, &in.Notes, &in.Priority,
	} {
		*f = strings.TrimSpace(*f)
	}
	tags := in.Tags[:0:0]
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	in.Tags = tags
	return in
}

func validateJobInput(in JobInput) (entities.JobPriority, error) {
	if in.CustomerName == "" {
		return "", invalid(ErrInvalidJob, "customer name is required")
	}
	if in.Phone == "" {
		return "", invalid(ErrInvalidJob, "phone is required")
	}
	if in.Email != "" && !isEmail(in.Email) {
		return "", invalid(ErrInvalidJob, "email %q is not valid", in.Email)
	}
	if in.NationalID != "" && !isNationalID(in.NationalID) {
		return "", invalid(ErrInvalidJob, "national id must be 11 digits")
	}
	if in.StartDate != nil && in.DueDate != nil && in.DueDate.Before(*in.StartDate) {
		return "", invalid(ErrInvalidJob, "due date is before start date")
	}

	priority := entities.JobPriorityNormal
	if in.Priority != "" {
		p, ok := entities.ParseJobPriority(in.Priority)
		if !ok {
			return "", invalid(ErrInvalidJob, "unknown priority %q", in.Priority)
		}
		priority = p
	}
	return priority, nil
}

func encodeTags(tags []string) (datatypes.JSON, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func applyJobInput(j *entities.Job, in JobInput, priority entities.JobPriority, tags datatypes.JSON) {
	j.Title = in.Title
	j.Description = in.Description
	j.CustomerName = in.CustomerName
	j.CustomerSurname = in.CustomerSurname
	j.Company = in.Company
	j.NationalID = in.NationalID
	j.TaxNumber = in.TaxNumber
	j.Phone = in.Phone
	j.Email = in.Email
	j.City = in.City
	j.District = in.District
	j.Address = in.Address
	j.BillingTitle = in.BillingTitle
	j.DeliveryAddress = in.DeliveryAddress
	j.Notes = in.Notes
	j.Tags = tags
	j.Priority = priority
	j.StartDate = in.StartDate
	j.DueDate = in.DueDate
}
