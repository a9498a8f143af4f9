package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"metalshop/internal/domain/entities"
	"metalshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultAuditLimit = 100

var ErrInvalidJobID = errors.New("invalid job id")

// auditor appends audit entries for the use cases. With the SQL store the
// entry joins the mutation's transaction.
type auditor struct {
	repo interfaces.IAuditLogRepository
	now  func() time.Time
}

func newAuditor(repo interfaces.IAuditLogRepository) auditor {
	return auditor{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

type auditEvent struct {
	action   entities.AuditAction
	entity   entities.EntityType
	entityID string
	jobID    string
	details  string
	metadata map[string]any
}

func (a auditor) record(ctx context.Context, ev auditEvent) error {
	if a.repo == nil {
		return nil
	}
	entry := entities.AuditLog{
		ID:        uuid.NewString(),
		UserID:    ActorFromContext(ctx).UserID,
		Action:    ev.action,
		Entity:    ev.entity,
		EntityID:  ev.entityID,
		Details:   ev.details,
		CreatedAt: a.now(),
	}
	if ev.jobID != "" {
		jobID := ev.jobID
		entry.JobID = &jobID
	}
	if len(ev.metadata) > 0 {
		b, err := json.Marshal(ev.metadata)
		if err != nil {
			return fmt.Errorf("marshal audit metadata: %w", err)
		}
		entry.Metadata = datatypes.JSON(b)
	}
	if err := a.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// IAuditUseCase reads the change history of a job.
type IAuditUseCase interface {
	ListByJob(ctx context.Context, jobID string, limit int) ([]entities.AuditLog, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// ListByJob returns the newest entries first, at most limit (100 by default).
func (u *AuditUseCase) ListByJob(ctx context.Context, jobID string, limit int) ([]entities.AuditLog, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}
	return u.repo.ListByJob(ctx, jobID, limit)
}
