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
	ErrOfferNotFound = errors.New("offer not found")
	ErrInvalidOffer  = errors.New("invalid offer")
)

type OfferItemInput struct {
	ProductName string
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	VatRate     decimal.Decimal
}

type OfferInput struct {
	JobID      string
	Title      string
	Currency   string
	ValidUntil *time.Time
	Notes      string
	Items      []OfferItemInput
}

type IOfferUseCase interface {
	Create(ctx context.Context, in OfferInput) (entities.Offer, error)
	Update(ctx context.Context, id string, in OfferInput) (entities.Offer, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Offer, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.Offer, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error)
}

type OfferUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *OfferUseCase {
	return &OfferUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a draft offer. Line and offer totals are fixed here.
func (u *OfferUseCase) Create(ctx context.Context, in OfferInput) (entities.Offer, error) {
	log := logger.FromContext(ctx)

	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.Offer{}, ErrInvalidJobID
	}
	currency, err := parseCurrency(in.Currency, ErrInvalidOffer)
	if err != nil {
		return entities.Offer{}, err
	}

	now := u.now()
	o := entities.Offer{
		ID:         uuid.NewString(),
		JobID:      in.JobID,
		Title:      strings.TrimSpace(in.Title),
		Status:     entities.OfferStatusDraft,
		Currency:   currency,
		ValidUntil: in.ValidUntil,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := applyOfferItems(&o, in.Items); err != nil {
		return entities.Offer{}, err
	}

	var created entities.Offer
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, in.JobID); err != nil {
			return err
		}
		var err error
		created, err = u.repos.Offers.Create(ctx, o)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityOffer,
			entityID: created.ID,
			jobID:    in.JobID,
			details:  fmt.Sprintf("%d items, %s %s", len(created.Items), created.GrandTotal, created.Currency),
		})
	})
	if err != nil {
		log.Info("[offer][usecase] create failed", zap.String("job_id", in.JobID), zap.Error(err))
		return entities.Offer{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityOffer), "create")
	log.Info("[offer][usecase] create success", zap.String("job_id", in.JobID), zap.String("offer_id", created.ID))
	return created, nil
}

// Update replaces the offer's fields and its whole item list. The status is
// left as is.
func (u *OfferUseCase) Update(ctx context.Context, id string, in OfferInput) (entities.Offer, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, invalid(ErrInvalidOffer, "id is required")
	}
	currency, err := parseCurrency(in.Currency, ErrInvalidOffer)
	if err != nil {
		return entities.Offer{}, err
	}

	var updated entities.Offer
	err = u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := u.repos.Offers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o.ID == "" {
			return ErrOfferNotFound
		}
		o.Title = strings.TrimSpace(in.Title)
		o.Currency = currency
		o.ValidUntil = in.ValidUntil
		o.Notes = strings.TrimSpace(in.Notes)
		o.UpdatedAt = u.now()
		if err := applyOfferItems(&o, in.Items); err != nil {
			return err
		}

		updated, err = u.repos.Offers.Update(ctx, o)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdate,
			entity:   entities.EntityOffer,
			entityID: id,
			jobID:    o.JobID,
			metadata: map[string]any{"grand_total": o.GrandTotal},
		})
	})
	if err != nil {
		log.Info("[offer][usecase] update failed", zap.String("offer_id", id), zap.Error(err))
		return entities.Offer{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityOffer), "update")
	return updated, nil
}

func (u *OfferUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Offer, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, invalid(ErrInvalidOffer, "id is required")
	}
	st, ok := entities.ParseOfferStatus(status)
	if !ok {
		return entities.Offer{}, invalid(ErrInvalidOffer, "unknown offer status %q", status)
	}

	var updated entities.Offer
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repos.Offers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrOfferNotFound
		}
		updated, err = u.repos.Offers.UpdateStatus(ctx, id, st)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrOfferNotFound
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionUpdateStatus,
			entity:   entities.EntityOffer,
			entityID: id,
			jobID:    current.JobID,
			details:  fmt.Sprintf("%s -> %s", current.Status, st),
			metadata: map[string]any{"from": current.Status, "to": st},
		})
	})
	if err != nil {
		log.Info("[offer][usecase] update status failed", zap.String("offer_id", id), zap.Error(err))
		return entities.Offer{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityOffer), "update_status")
	return updated, nil
}

func (u *OfferUseCase) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidOffer, "id is required")
	}

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := u.repos.Offers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o.ID == "" {
			return ErrOfferNotFound
		}
		if err := u.repos.Offers.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityOffer,
			entityID: id,
			jobID:    o.JobID,
		})
	})
	if err != nil {
		log.Info("[offer][usecase] delete failed", zap.String("offer_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityOffer), "delete")
	return nil
}

func (u *OfferUseCase) Get(ctx context.Context, id string) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, invalid(ErrInvalidOffer, "id is required")
	}
	o, err := u.repos.Offers.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *OfferUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return nil, err
	}
	return u.repos.Offers.ListByJob(ctx, job.ID)
}

// applyOfferItems validates items, replaces o.Items and fills the totals.
func applyOfferItems(o *entities.Offer, items []OfferItemInput) error {
	out := make([]entities.OfferItem, 0, len(items))
	for i, it := range items {
		name := strings.TrimSpace(it.ProductName)
		if name == "" {
			return invalid(ErrInvalidOffer, "item %d: product name is required", i+1)
		}
		if !it.Quantity.IsPositive() {
			return invalid(ErrInvalidOffer, "item %d: quantity must be positive", i+1)
		}
		if it.UnitPrice.IsNegative() {
			return invalid(ErrInvalidOffer, "item %d: unit price must not be negative", i+1)
		}
		if !isPercentage(it.VatRate) {
			return invalid(ErrInvalidOffer, "item %d: vat rate must be between 0 and 100", i+1)
		}
		unit := strings.TrimSpace(it.Unit)
		if unit == "" {
			unit = entities.DefaultMaterialUnit
		}
		out = append(out, entities.OfferItem{
			ID:          uuid.NewString(),
			OfferID:     o.ID,
			ProductName: name,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			Unit:        unit,
			UnitPrice:   it.UnitPrice,
			VatRate:     it.VatRate,
			SortOrder:   i,
		})
	}
	o.Items = out
	o.Subtotal, o.VatTotal, o.GrandTotal = finance.OfferTotals(o.Items)
	return nil
}

func parseCurrency(s string, sentinel error) (entities.Currency, error) {
	c := entities.Currency(strings.ToUpper(strings.TrimSpace(s)))
	if c == "" {
		return entities.CurrencyTRY, nil
	}
	if !c.Valid() {
		return "", invalid(sentinel, "unknown currency %q", s)
	}
	return c, nil
}
