package interfaces

import (
	"context"
	"metalshop/internal/domain/entities"
)

// IAuditLogRepository appends and reads audit entries.
//
// The SQL implementation joins the caller's transaction; the DynamoDB one
// writes immediately.

type IAuditLogRepository interface {
	Append(ctx context.Context, entry entities.AuditLog) error
	ListByJob(ctx context.Context, jobID string, limit int) ([]entities.AuditLog, error)
}
