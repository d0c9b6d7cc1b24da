package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
// Topic and channel flags are nullable on purpose: NULL means the user never
// set the flag, which the domain treats as "allow".
type NotificationPreferenceModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primary_key"`
	PriceAlerts      *bool     `gorm:"type:boolean"`
	DealUpdates      *bool     `gorm:"type:boolean"`
	NewOpportunities *bool     `gorm:"type:boolean"`
	SystemUpdates    *bool     `gorm:"type:boolean"`
	Marketing        *bool     `gorm:"type:boolean"`
	PushEnabled      *bool     `gorm:"type:boolean"`
	EmailEnabled     *bool     `gorm:"type:boolean"`
	SMSEnabled       *bool     `gorm:"type:boolean;column:sms_enabled"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}
