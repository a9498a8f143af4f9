package entities

import (
	"time"

	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionUpdateStatus AuditAction = "UPDATE_STATUS"
	AuditActionHardDelete   AuditAction = "HARD_DELETE"
	AuditActionArchive      AuditAction = "ARCHIVE"
	AuditActionActivate     AuditAction = "ACTIVATE"
)

// AuditLog records who changed what. JobID is set when the entity belongs
// to a job so the job history can be listed.
type AuditLog struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string         `gorm:"type:varchar(36);index" json:"user_id,omitempty"`
	Action    AuditAction    `gorm:"type:varchar(24);not null" json:"action"`
	Entity    EntityType     `gorm:"type:varchar(32);not null" json:"entity"`
	EntityID  string         `gorm:"type:varchar(36);index;not null" json:"entity_id"`
	JobID     *string        `gorm:"type:varchar(36);index" json:"job_id,omitempty"`
	Details   string         `gorm:"type:text" json:"details,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}
