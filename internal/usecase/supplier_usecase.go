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
	"go.uber.org/zap"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierInactive = errors.New("supplier is archived")
	ErrInvalidSupplier  = errors.New("invalid supplier")
)

type SupplierInput struct {
	Name        string
	ContactName string
	Phone       string
	Email       string
	TaxNumber   string
	Address     string
	Notes       string
}

type CatalogQuery struct {
	IsActive *bool
	Search   string
}

type ISupplierUseCase interface {
	Create(ctx context.Context, in SupplierInput) (entities.Supplier, error)
	Update(ctx context.Context, id string, in SupplierInput) (entities.Supplier, error)
	Get(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context, q CatalogQuery) ([]entities.Supplier, error)
	ListActive(ctx context.Context) ([]entities.Supplier, error)
	Archive(ctx context.Context, id string) (entities.Supplier, error)
	Activate(ctx context.Context, id string) (entities.Supplier, error)
}

type SupplierUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *SupplierUseCase {
	return &SupplierUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *SupplierUseCase) Create(ctx context.Context, in SupplierInput) (entities.Supplier, error) {
	log := logger.FromContext(ctx)

	if err := validateSupplierInput(&in); err != nil {
		return entities.Supplier{}, err
	}

	now := u.now()
	s := entities.Supplier{
		ID:          uuid.NewString(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		TaxNumber:   in.TaxNumber,
		Address:     in.Address,
		IsActive:    true,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created entities.Supplier
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repos.Suppliers.Create(ctx, s)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntitySupplier,
			entityID: created.ID,
			details:  created.Name,
		})
	})
	if err != nil {
		log.Info("[supplier][usecase] create failed", zap.Error(err))
		return entities.Supplier{}, err
	}

	u.metrics.RecordOperation(string(entities.EntitySupplier), "create")
	log.Info("[supplier][usecase] create success", zap.String("supplier_id", created.ID))
	return created, nil
}

func (u *SupplierUseCase) Update(ctx context.Context, id string, in SupplierInput) (entities.Supplier, error) {
	log := logger.FromContext(ctx)

	if err := validateSupplierInput(&in); err != nil {
		return entities.Supplier{}, err
	}

	var updated entities.Supplier
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		s, err := loadSupplier(ctx, u.repos.Suppliers, id)
		if err != nil {
			return err
		}
		s.Name = in.Name
		s.ContactName = in.ContactName
		s.Phone = in.Phone
		s.Email = in.Email
		s.TaxNumber = in.TaxNumber
		s.Address = in.Address
		s.Notes = in.Notes
		s.UpdatedAt = u.now()

		updated, err = u.repos.Suppliers.Update(ctx, s)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntitySupplier,
			entityID: s.ID,
			details:  s.Name,
		})
	})
	if err != nil {
		log.Info("[supplier][usecase] update failed", zap.String("supplier_id", id), zap.Error(err))
		return entities.Supplier{}, err
	}

	u.metrics.RecordOperation(string(entities.EntitySupplier), "update")
	return updated, nil
}

func (u *SupplierUseCase) Get(ctx context.Context, id string) (entities.Supplier, error) {
	return loadSupplier(ctx, u.repos.Suppliers, id)
}

func (u *SupplierUseCase) List(ctx context.Context, q CatalogQuery) ([]entities.Supplier, error) {
	return u.repos.Suppliers.List(ctx, entities.CatalogFilter{IsActive: q.IsActive, Search: strings.TrimSpace(q.Search)})
}

func (u *SupplierUseCase) ListActive(ctx context.Context) ([]entities.Supplier, error) {
	active := true
	return u.repos.Suppliers.List(ctx, entities.CatalogFilter{IsActive: &active})
}

func (u *SupplierUseCase) Archive(ctx context.Context, id string) (entities.Supplier, error) {
	return u.setActive(ctx, id, false)
}

func (u *SupplierUseCase) Activate(ctx context.Context, id string) (entities.Supplier, error) {
	return u.setActive(ctx, id, true)
}

func (u *SupplierUseCase) setActive(ctx context.Context, id string, active bool) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, invalid(ErrInvalidSupplier, "id is required")
	}
	action := entities.AuditActionArchive
	if active {
		action = entities.AuditActionActivate
	}

	var s entities.Supplier
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		s, err = u.repos.Suppliers.SetActive(ctx, id, active)
		if err != nil {
			return err
		}
		if s.ID == "" {
			return ErrSupplierNotFound
		}
		return u.audit.record(ctx, auditEvent{action: action, entity: entities.EntitySupplier, entityID: id})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[supplier][usecase] set active failed", zap.String("supplier_id", id), zap.Error(err))
		return entities.Supplier{}, err
	}

	u.metrics.RecordOperation(string(entities.EntitySupplier), strings.ToLower(string(action)))
	return s, nil
}

func loadSupplier(ctx context.Context, suppliers interfaces.ISupplierRepository, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, invalid(ErrInvalidSupplier, "id is required")
	}
	s, err := suppliers.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func validateSupplierInput(in *SupplierInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.TaxNumber = strings.TrimSpace(in.TaxNumber)
	in.Address = strings.TrimSpace(in.Address)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Name == "" {
		return invalid(ErrInvalidSupplier, "name is required")
	}
	if in.Email != "" && !isEmail(in.Email) {
		return invalid(ErrInvalidSupplier, "email is not valid")
	}
	return nil
}
