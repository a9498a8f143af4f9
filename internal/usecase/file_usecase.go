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
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidFile  = errors.New("invalid file")
)

// FileInput registers a file that already lives in external storage under
// StorageKey.
type FileInput struct {
	JobID      string
	Category   string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
}

type IFileUseCase interface {
	Create(ctx context.Context, in FileInput) (entities.File, error)
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.File, error)
}

type FileUseCase struct {
	repos   Repositories
	audit   auditor
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
}

var _ IFileUseCase = (*FileUseCase)(nil)

func NewFileUseCase(repos Repositories, metrics interfaces.IMetricsRecorder) *FileUseCase {
	return &FileUseCase{
		repos:   repos,
		audit:   newAuditor(repos.AuditLogs),
		metrics: recorderOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *FileUseCase) Create(ctx context.Context, in FileInput) (entities.File, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.File{}, ErrInvalidJobID
	}
	category := entities.FileCategory(strings.TrimSpace(in.Category))
	if category == "" {
		category = entities.FileCategoryOther
	}
	if !category.Valid() {
		return entities.File{}, invalid(ErrInvalidFile, "unknown category %q", in.Category)
	}
	f := entities.File{
		ID:         uuid.NewString(),
		JobID:      in.JobID,
		Category:   category,
		FileName:   strings.TrimSpace(in.FileName),
		MimeType:   strings.TrimSpace(in.MimeType),
		SizeBytes:  in.SizeBytes,
		StorageKey: strings.TrimSpace(in.StorageKey),
		UploadedBy: ActorFromContext(ctx).UserID,
		CreatedAt:  u.now(),
	}
	if f.FileName == "" {
		return entities.File{}, invalid(ErrInvalidFile, "file name is required")
	}
	if f.StorageKey == "" {
		return entities.File{}, invalid(ErrInvalidFile, "storage key is required")
	}
	if f.SizeBytes < 0 {
		return entities.File{}, invalid(ErrInvalidFile, "size must not be negative")
	}

	var created entities.File
	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadJob(ctx, u.repos.Jobs, in.JobID); err != nil {
			return err
		}
		var err error
		created, err = u.repos.Files.Create(ctx, f)
		if err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionCreate,
			entity:   entities.EntityFile,
			entityID: created.ID,
			jobID:    in.JobID,
			details:  created.FileName,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[file][usecase] create failed", zap.String("job_id", in.JobID), zap.Error(err))
		return entities.File{}, err
	}

	u.metrics.RecordOperation(string(entities.EntityFile), "create")
	return created, nil
}

// Delete removes the metadata only. The stored object is left to the owner
// of the storage.
func (u *FileUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidFile, "id is required")
	}

	err := u.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		f, err := u.repos.Files.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if f.ID == "" {
			return ErrFileNotFound
		}
		if err := u.repos.Files.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.record(ctx, auditEvent{
			action:   entities.AuditActionDelete,
			entity:   entities.EntityFile,
			entityID: id,
			jobID:    f.JobID,
			details:  f.FileName,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Info("[file][usecase] delete failed", zap.String("file_id", id), zap.Error(err))
		return err
	}

	u.metrics.RecordOperation(string(entities.EntityFile), "delete")
	return nil
}

func (u *FileUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.File, error) {
	job, err := loadJob(ctx, u.repos.Jobs, jobID)
	if err != nil {
		return nil, err
	}
	return u.repos.Files.ListByJob(ctx, job.ID)
}
