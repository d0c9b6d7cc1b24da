package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecordModel is the GORM-specific struct for the 'notification_records' table.
// It represents one entry of a user's notification history.
type NotificationRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(50);not null;index"`
	Title     string    `gorm:"type:text;not null"`
	Message   string    `gorm:"type:text;not null"`
	Data      []byte    `gorm:"type:jsonb"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationRecordModel) TableName() string {
	return "notification_records"
}
