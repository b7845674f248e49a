// Package audit persists portal-side audit records: login attempts and
// uploaded document metadata. Business data from SAP is never stored here.
// The store is optional; every method is a no-op on a nil store so portals
// run without a database when AUDIT_DB_ENABLED is off.
package audit

import (
	"time"

	"gorm.io/gorm"
)

// LoginEvent records one authentication attempt against a portal
type LoginEvent struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Portal    string         `json:"portal" gorm:"type:varchar(20);index;not null"`
	SubjectID string         `json:"subject_id" gorm:"type:varchar(40);index;not null"`
	Success   bool           `json:"success" gorm:"index"`
	Reason    string         `json:"reason" gorm:"type:varchar(100)"`
	ClientIP  string         `json:"client_ip" gorm:"type:varchar(45)"`
	UserAgent string         `json:"user_agent" gorm:"type:varchar(255)"`
	RequestID string         `json:"request_id" gorm:"type:varchar(64);index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// UploadedDocument records the metadata of a file uploaded through a portal.
// The file itself lives on disk under the upload directory.
type UploadedDocument struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Portal      string         `json:"portal" gorm:"type:varchar(20);index;not null"`
	SubjectID   string         `json:"subject_id" gorm:"type:varchar(40);index;not null"`
	Kind        string         `json:"kind" gorm:"type:varchar(30);not null"`
	FileName    string         `json:"file_name" gorm:"type:varchar(255);not null"`
	StoredPath  string         `json:"stored_path" gorm:"type:varchar(512);not null"`
	ContentType string         `json:"content_type" gorm:"type:varchar(100)"`
	SizeBytes   int64          `json:"size_bytes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
