package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlertSubscriptionModel is the GORM-specific struct for the 'price_alert_subscriptions' table.
type PriceAlertSubscriptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Commodity   string    `gorm:"type:varchar(100);not null;index"`
	Condition   string    `gorm:"type:varchar(20);not null"`
	Threshold   float64   `gorm:"type:decimal(12,2);not null"`
	Location    string    `gorm:"type:varchar(100)"`
	Active      bool      `gorm:"not null;default:true;index"`
	OneTime     bool      `gorm:"not null;default:false"`
	TriggeredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceAlertSubscriptionModel) TableName() string {
	return "price_alert_subscriptions"
}

// PriceEntryModel is the GORM-specific struct for the 'price_entries' table,
// the market price history written by the price ingestion surface.
type PriceEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Commodity  string    `gorm:"type:varchar(100);not null;index:idx_price_commodity_location"`
	Location   string    `gorm:"type:varchar(100);index:idx_price_commodity_location"`
	Price      float64   `gorm:"type:decimal(12,2);not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PriceEntryModel) TableName() string {
	return "price_entries"
}
