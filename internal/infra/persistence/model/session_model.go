package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'user_sessions' table. Rows are never deleted;
// revocation only stamps expires_at.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IPAddress string    `gorm:"type:varchar(45)"`
	Agent     string    `gorm:"type:text"`
	CreatedAt time.Time
	ExpiresAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "user_sessions"
}
