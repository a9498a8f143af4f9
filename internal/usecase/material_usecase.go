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
	ErrMaterialNotFound = errors.New("material not found")
	ErrMaterialInactive = errors.New("material is archived")
	ErrInvalidMaterial  = errors.New("invalid material")
)

var defaultMaterialVatRate = decimal.NewFromInt(20)

// MaterialInput describes a catalog material. A nil VAT rate means 20%.
type MaterialInput struct {
	Name             string
	Category         string
	Unit             string
	DefaultUnitPrice decimal.Decimal
	DefaultVatRate   *decimal.Decimal
}

type IMaterialUseCase interface {
	Create(ctx context.Context, in MaterialInput) (entities.Material, error)
	Update(ctx context.Context, id string, in MaterialInput) (entities.Material, error)
	Get(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context, q CatalogQuery) ([]entities.Material, error)
	ListActive(ctx context.Context) ([]entities.Material, error)
	Archive(ctx context.Context, id string) (entities.Material, error)
	Activate(ctx context.Context, id string) (entities.Material, error)
}

type MaterialUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *MaterialUseCase {
	return &MaterialUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *MaterialUseCase) Create(ctx context.Context, in MaterialInput) (entities.Material, error) {
	log := logger.FromContext(ctx)

	vat, err := validateMaterialInput(&in)
	if err != nil {
		return entities.Material{}, err
	}

	now := u.now()
	m := entities.Material{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Category:         in.Category,
		Unit:             in.Unit,
		DefaultUnitPrice: in.DefaultUnitPrice,
		DefaultVatRate:   vat,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var created entities.Material
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repos.Materials.Create(ctx, m)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityMaterial,
			entityID: created.ID,
			details:  created.Name,
		})
	})
	if err != nil {
		log.Info("[material][usecase] create failed", zap.Error(err))
		return entities.Material{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityMaterial), "create")
	log.Info("[material][usecase] create success", zap.String("material_id", created.ID))
	return created, nil
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, in MaterialInput) (entities.Material, error) {
	vat, err := validateMaterialInput(&in)
	if err != nil {
		return entities.Material{}, err
	}

	var updated entities.Material
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		m, err := loadMaterial(ctx, u.repos.Materials, id)
		if err != nil {
			return err
		}
		m.Name = in.Name
		m.Category = in.Category
		m.Unit = in.Unit
		m.DefaultUnitPrice = in.DefaultUnitPrice
		m.DefaultVatRate = vat
		m.UpdatedAt = u.now()

		updated, err = u.repos.Materials.Update(ctx, m)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityMaterial,
			entityID: m.ID,
			details:  m.Name,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[material][usecase] update failed", zap.String("material_id", id), zap.Error(err))
		return entities.Material{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityMaterial), "update")
	return updated, nil
}

func (u *MaterialUseCase) Get(ctx context.Context, id string) (entities.Material, error) {
	return loadMaterial(ctx, u.repos.Materials, id)
}

func (u *MaterialUseCase) List(ctx context.Context, q CatalogQuery) ([]entities.Material, error) {
	return u.repos.Materials.List(ctx, entities.CatalogFilter{IsActive: q.IsActive, Search: strings.TrimSpace(q.Search)})
}

func (u *MaterialUseCase) ListActive(ctx context.Context) ([]entities.Material, error) {
	active := true
	return u.repos.Materials.List(ctx, entities.CatalogFilter{IsActive: &active})
}

func (u *MaterialUseCase) Archive(ctx context.Context, id string) (entities.Material, error) {
	return u.setActive(ctx, id, false)
}

func (u *MaterialUseCase) Activate(ctx context.Context, id string) (entities.Material, error) {
	return u.setActive(ctx, id, true)
}

func (u *MaterialUseCase) setActive(ctx context.Context, id string, active bool) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, invalid(ErrInvalidMaterial, "id is required")
	}
	action := entities.AuditActionArchive
	if active {
		action = entities.AuditActionActivate
	}

	var m entities.Material
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = u.repos.Materials.SetActive(ctx, id, active)
		if err != nil {
			return err
		}
		if m.ID == "" {
			return ErrMaterialNotFound
		}
		return u.audit.record(ctx, auditEvent{action: action, entity: entities.EntityMaterial, entityID: id})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[material][usecase] set active failed", zap.String("material_id", id), zap.Error(err))
		return entities.Material{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityMaterial), strings.ToLower(string(action)))
	return m, nil
}

func loadMaterial(ctx context.Context, materials interfaces.IMaterialRepository, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, invalid(ErrInvalidMaterial, "id is required")
	}
	m, err := materials.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func validateMaterialInput(in *MaterialInput) (decimal.Decimal, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.Unit == "" {
		in.Unit = entities.DefaultMaterialUnit
	}

	if in.Name == "" {
		return decimal.Zero, invalid(ErrInvalidMaterial, "name is required")
	}
	if in.DefaultUnitPrice.IsNegative() {
		return decimal.Zero, invalid(ErrInvalidMaterial, "unit price must not be negative")
	}
	vat := defaultMaterialVatRate
	if in.DefaultVatRate != nil {
		vat = *in.DefaultVatRate
	}
	if !isPercentage(vat) {
		return decimal.Zero, invalid(ErrInvalidMaterial, "vat rate must be between 0 and 100")
	}
	return vat, nil
}
