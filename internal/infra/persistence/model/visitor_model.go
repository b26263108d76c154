package model

import "time"

// VisitorLogModel mirrors the 'visitor_logs' table. The (ip_address, date)
// pair carries a unique constraint so repeat visits collapse into one row.
type VisitorLogModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	IPAddress string    `gorm:"type:varchar(45);not null;uniqueIndex:idx_visitor_ip_date"`
	Agent     string    `gorm:"type:text"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_visitor_ip_date"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitorLogModel) TableName() string {
	return "visitor_logs"
}
