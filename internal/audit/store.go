package audit

import (
	"context"

	"gorm.io/gorm"
)

// Store writes audit records through gorm. A nil *Store is valid and drops
// every write, which is how portals run with the audit database disabled.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open gorm connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the audit tables
func (s *Store) Migrate() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.AutoMigrate(&LoginEvent{}, &UploadedDocument{})
}

// RecordLogin appends one login attempt
func (s *Store) RecordLogin(ctx context.Context, ev *LoginEvent) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(ev).Error
}

// RecordUpload appends one uploaded document record
func (s *Store) RecordUpload(ctx context.Context, doc *UploadedDocument) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(doc).Error
}

// RecentLogins returns the latest login events for one subject, newest first
func (s *Store) RecentLogins(ctx context.Context, portal, subjectID string, limit int) ([]LoginEvent, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	var events []LoginEvent
	err := s.db.WithContext(ctx).
		Where("portal = ? AND subject_id = ?", portal, subjectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
