package entities

import "time"

type FileCategory string

const (
	FileCategoryDrawing  FileCategory = "Drawing"
	FileCategoryPhoto    FileCategory = "Photo"
	FileCategoryContract FileCategory = "Contract"
	FileCategoryInvoice  FileCategory = "Invoice"
	FileCategoryOther    FileCategory = "Other"
)

func (c FileCategory) Valid() bool {
	switch c {
	case FileCategoryDrawing, FileCategoryPhoto, FileCategoryContract, FileCategoryInvoice, FileCategoryOther:
		return true
	}
	return false
}

// File is metadata about a document attached to a job. Content lives in
// external storage addressed by StorageKey.
type File struct {
	ID         string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID      string       `gorm:"type:varchar(36);index;not null" json:"job_id"`
	Category   FileCategory `gorm:"type:varchar(16);not null" json:"category"`
	FileName   string       `gorm:"type:varchar(255);not null" json:"file_name"`
	MimeType   string       `gorm:"type:varchar(128)" json:"mime_type,omitempty"`
	SizeBytes  int64        `json:"size_bytes"`
	StorageKey string       `gorm:"type:varchar(512);not null" json:"storage_key"`
	UploadedBy string       `gorm:"type:varchar(36)" json:"uploaded_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
