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
	ErrMaterialPurchaseNotFound = errors.New("material purchase not found")
	ErrInvalidMaterialPurchase  = errors.New("invalid material purchase")
)

// MaterialPurchaseInput references a catalog material, a free-text name, or
// both. Omitted prices, VAT and unit are taken from the catalog material.
type MaterialPurchaseInput struct {
	JobID        string
	SupplierID   string
	MaterialID   *string
	MaterialName string
	Quantity     decimal.Decimal
	Unit         string
	UnitPrice    *decimal.Decimal
	VatRate      *decimal.Decimal
	PurchaseDate time.Time
	InvoiceNo    string
	Notes        string
}

// MaterialPurchasePatch changes only the fields that are set. An empty
// MaterialID unlinks the catalog material.
type MaterialPurchasePatch struct {
	SupplierID   *string
	MaterialID   *string
	MaterialName *string
	Quantity     *decimal.Decimal
	Unit         *string
	UnitPrice    *decimal.Decimal
	VatRate      *decimal.Decimal
	PurchaseDate *time.Time
	InvoiceNo    *string
	Notes        *string
}

type MaterialPurchaseQuery struct {
	SupplierID string
	MaterialID string
	From       *time.Time
	To         *time.Time
}

type MaterialPurchaseList struct {
	Purchases []entities.MaterialPurchase `json:"purchases"`
	Summary   finance.PurchaseSummary     `json:"summary"`
}

type IMaterialPurchaseUseCase interface {
	Create(ctx context.Context, in MaterialPurchaseInput) (entities.MaterialPurchase, error)
	Update(ctx context.Context, id string, patch MaterialPurchasePatch) (entities.MaterialPurchase, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.MaterialPurchase, error)
	ListByJob(ctx context.Context, jobID string, q MaterialPurchaseQuery) (MaterialPurchaseList, error)
}

type MaterialPurchaseUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IMaterialPurchaseUseCase = (*MaterialPurchaseUseCase)(nil)

func NewMaterialPurchaseUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *MaterialPurchaseUseCase {
	return &MaterialPurchaseUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *MaterialPurchaseUseCase) Create(ctx context.Context, in MaterialPurchaseInput) (entities.MaterialPurchase, error) {
	log := logger.FromContext(ctx)

	in.JobID = strings.TrimSpace(in.JobID)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	in.MaterialID = trimmedPtr(in.MaterialID)
	in.MaterialName = strings.TrimSpace(in.MaterialName)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.JobID == "" {
		return entities.MaterialPurchase{}, ErrInvalidJobID
	}
	if in.SupplierID == "" {
		return entities.MaterialPurchase{}, invalid(ErrInvalidMaterialPurchase, "supplier is required")
	}
	if in.MaterialID == nil && in.MaterialName == "" {
		return entities.MaterialPurchase{}, invalid(ErrInvalidMaterialPurchase, "choose a catalog material or enter a material name")
	}

	var created entities.MaterialPurchase
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, in.JobID); err != nil {
			return err
		}
		supplier, err := loadSupplier(ctx, u.repos.Suppliers, in.SupplierID)
		if err != nil {
			return err
		}
		if !supplier.IsActive {
			return ErrSupplierInactive
		}

		now := u.now()
		p := entities.MaterialPurchase{
			ID:           uuid.NewString(),
			JobID:        in.JobID,
			SupplierID:   supplier.ID,
			MaterialName: in.MaterialName,
			Quantity:     in.Quantity,
			Unit:         in.Unit,
			VatRate:      in.VatRate,
			PurchaseDate: in.PurchaseDate,
			InvoiceNo:    strings.TrimSpace(in.InvoiceNo),
			Notes:        strings.TrimSpace(in.Notes),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if p.PurchaseDate.IsZero() {
			p.PurchaseDate = now
		}
		if in.UnitPrice != nil {
			p.UnitPrice = *in.UnitPrice
		}

		if in.MaterialID != nil {
			material, err := loadMaterial(ctx, u.repos.Materials, *in.MaterialID)
			if err != nil {
				return err
			}
			if !material.IsActive {
				return ErrMaterialInactive
			}
			applyCatalogDefaults(&p, material, in.UnitPrice == nil)
		} else if in.UnitPrice == nil {
			return invalid(ErrInvalidMaterialPurchase, "unit price is required")
		}
		if p.Unit == "" {
			p.Unit = entities.DefaultMaterialUnit
		}

		if err := validatePurchaseAmounts(p); err != nil {
			return err
		}
		p.TotalAmount = finance.MaterialAmount(p.Quantity, p.UnitPrice, p.VatRate)

		created, err = u.repos.MaterialPurchases.Create(ctx, p)
		if err != nil {
			return err
		}
		if err := recomputeCost(ctx, u.repos.Jobs, u.metrics, in.JobID, entities.CostCategoryMaterial); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityMaterialPurchase,
			entityID: created.ID,
			jobID:    in.JobID,
			details:  fmt.Sprintf("%s %s %s from %s", created.Quantity, created.Unit, created.MaterialName, supplier.Name),
			metadata: map[string]any{"supplier_id": supplier.ID, "total_amount": created.TotalAmount},
		})
	})
	if err != nil {
		log.Info("[purchase][usecase] create failed", zap.String("job_id", in.JobID), zap.Error(err))
		return entities.MaterialPurchase{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityMaterialPurchase), "create")
	log.Info("[purchase][usecase] create success", zap.String("job_id", in.JobID), zap.String("purchase_id", created.ID))
	return created, nil
}

func (u *MaterialPurchaseUseCase) Update(ctx context.Context, id string, patch MaterialPurchasePatch) (entities.MaterialPurchase, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaterialPurchase{}, invalid(ErrInvalidMaterialPurchase, "id is required")
	}

	var updated entities.MaterialPurchase
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.repos.MaterialPurchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return ErrMaterialPurchaseNotFound
		}

		if patch.SupplierID != nil {
			supplierID := strings.TrimSpace(*patch.SupplierID)
			if supplierID != p.SupplierID {
				supplier, err := loadSupplier(ctx, u.repos.Suppliers, supplierID)
				if err != nil {
					return err
				}
				if !supplier.IsActive {
					return ErrSupplierInactive
				}
				p.SupplierID = supplier.ID
				p.Supplier = nil
			}
		}
		if patch.MaterialName != nil {
			p.MaterialName = strings.TrimSpace(*patch.MaterialName)
		}
		if patch.MaterialID != nil {
			previous := p.MaterialID
			p.MaterialID = trimmedPtr(patch.MaterialID)
			p.Material = nil
			if p.MaterialID != nil {
				material, err := loadMaterial(ctx, u.repos.Materials, *p.MaterialID)
				if err != nil {
					return err
				}
				if !material.IsActive && (previous == nil || *previous != material.ID) {
					return ErrMaterialInactive
				}
				if patch.MaterialName == nil {
					p.MaterialName = material.Name
				}
			}
		}
		if !p.IsCatalogLinked() && p.MaterialName == "" {
			return invalid(ErrInvalidMaterialPurchase, "choose a catalog material or enter a material name")
		}
		if patch.Quantity != nil {
			p.Quantity = *patch.Quantity
		}
		if patch.Unit != nil {
			p.Unit = strings.TrimSpace(*patch.Unit)
			if p.Unit == "" {
				p.Unit = entities.DefaultMaterialUnit
			}
		}
		if patch.UnitPrice != nil {
			p.UnitPrice = *patch.UnitPrice
		}
		if patch.VatRate != nil {
			v := *patch.VatRate
			p.VatRate = &v
		}
		if patch.PurchaseDate != nil && !patch.PurchaseDate.IsZero() {
			p.PurchaseDate = *patch.PurchaseDate
		}
		if patch.InvoiceNo != nil {
			p.InvoiceNo = strings.TrimSpace(*patch.InvoiceNo)
		}
		if patch.Notes != nil {
			p.Notes = strings.TrimSpace(*patch.Notes)
		}
		if err := validatePurchaseAmounts(p); err != nil {
			return err
		}

		p.TotalAmount = finance.MaterialAmount(p.Quantity, p.UnitPrice, p.VatRate)
		p.UpdatedAt = u.now()
		updated, err = u.repos.MaterialPurchases.Update(ctx, p)
		if err != nil {
			return err
		}
		if err := recomputeCost(ctx, u.repos.Jobs, u.metrics, p.JobID, entities.CostCategoryMaterial); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityMaterialPurchase,
			entityID: id,
			jobID:    p.JobID,
			metadata: map[string]any{"total_amount": p.TotalAmount},
		})
	})
	if err != nil {
		log.Info("[purchase][usecase] update failed", zap.String("purchase_id", id), zap.Error(err))
		return entities.MaterialPurchase{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityMaterialPurchase), "update")
	return updated, nil
}

func (u *MaterialPurchaseUseCase) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidMaterialPurchase, "id is required")
	}

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.repos.MaterialPurchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return ErrMaterialPurchaseNotFound
		}
		if err := u.repos.MaterialPurchases.Delete(ctx, id); err != nil {
			return err
		}
		if err := recomputeCost(ctx, u.repos.Jobs, u.metrics, p.JobID, entities.CostCategoryMaterial); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityMaterialPurchase,
			entityID: id,
			jobID:    p.JobID,
			metadata: map[string]any{"total_amount": p.TotalAmount},
		})
	})
	if err != nil {
		log.Info("[purchase][usecase] delete failed", zap.String("purchase_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityMaterialPurchase), "delete")
	return nil
}

func (u *MaterialPurchaseUseCase) Get(ctx context.Context, id string) (entities.MaterialPurchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaterialPurchase{}, invalid(ErrInvalidMaterialPurchase, "id is required")
	}
	p, err := u.repos.MaterialPurchases.GetByID(ctx, id)
	if err != nil {
		return entities.MaterialPurchase{}, err
	}
	if p.ID == "" {
		return entities.MaterialPurchase{}, ErrMaterialPurchaseNotFound
	}
	return p, nil
}

func (u *MaterialPurchaseUseCase) ListByJob(ctx context.Context, jobID string, q MaterialPurchaseQuery) (MaterialPurchaseList, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return MaterialPurchaseList{}, err
	}
	purchases, err := u.repos.MaterialPurchases.ListByJob(ctx, job.ID, entities.MaterialPurchaseFilter{
		SupplierID: strings.TrimSpace(q.SupplierID),
		MaterialID: strings.TrimSpace(q.MaterialID),
		DateRange:  entities.DateRange{From: q.From, To: q.To},
	})
	if err != nil {
		return MaterialPurchaseList{}, err
	}
	return MaterialPurchaseList{Purchases: purchases, Summary: finance.SummarizePurchases(purchases)}, nil
}

// applyCatalogDefaults links the purchase to material and fills the fields
// the caller left empty.
func applyCatalogDefaults(p *entities.MaterialPurchase, material entities.Material, useCatalogPrice bool) {
	id := material.ID
	p.MaterialID = &id
	if p.MaterialName == "" {
		p.MaterialName = material.Name
	}
	if p.Unit == "" {
		p.Unit = material.Unit
	}
	if p.VatRate == nil {
		v := material.DefaultVatRate
		p.VatRate = &v
	}
	if useCatalogPrice {
		p.UnitPrice = material.DefaultUnitPrice
	}
}

func validatePurchaseAmounts(p entities.MaterialPurchase) error {
	if !p.Quantity.IsPositive() {
		return invalid(ErrInvalidMaterialPurchase, "quantity must be positive")
	}
	if p.UnitPrice.IsNegative() {
		return invalid(ErrInvalidMaterialPurchase, "unit price must not be negative")
	}
	if p.VatRate != nil && !isPercentage(*p.VatRate) {
		return invalid(ErrInvalidMaterialPurchase, "vat rate must be between 0 and 100")
	}
	return nil
}
