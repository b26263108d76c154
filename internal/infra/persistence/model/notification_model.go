package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(32);not null"`
	SavedJobID *int64
	Seen       bool `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// SavedJobModel mirrors the 'saved_jobs' table. The posting itself lives in
// another service; job_owner_id is denormalized here for notification fan-out.
type SavedJobModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	JobOwnerID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedJobModel) TableName() string {
	return "saved_jobs"
}
