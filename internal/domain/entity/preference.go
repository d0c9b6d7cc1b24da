// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChannelSettings holds per-channel delivery switches. A nil flag means the
// user never touched the setting and the channel stays enabled.
type ChannelSettings struct {
	Push  *bool `json:"push,omitempty"`
	Email *bool `json:"email,omitempty"`
	SMS   *bool `json:"sms,omitempty"`
}

// NotificationPreference is a user's stored notification settings. The model
// is opt-out: every flag is a tri-state pointer where nil (never set) and
// true both mean "send"; only an explicit false blocks delivery. This
// defaulting is a product decision, not an implementation accident, and it
// must hold for users who have no preference record at all.
type NotificationPreference struct {
	UserID           uuid.UUID       `json:"user_id"`
	PriceAlerts      *bool           `json:"price_alerts,omitempty"`
	DealUpdates      *bool           `json:"deal_updates,omitempty"`
	NewOpportunities *bool           `json:"new_opportunities,omitempty"`
	SystemUpdates    *bool           `json:"system_updates,omitempty"`
	Marketing        *bool           `json:"marketing,omitempty"`
	Channels         ChannelSettings `json:"channels"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Allows reports whether a notification of the given type should be sent.
// A nil receiver (no stored preferences) allows everything, as does any
// type that has no mapped flag.
func (p *NotificationPreference) Allows(t NotificationType) bool {
	if p == nil {
		return true
	}

	var flag *bool
	switch t {
	case NotificationTypePriceAlert:
		flag = p.PriceAlerts
	case NotificationTypeDealUpdate:
		flag = p.DealUpdates
	case NotificationTypeNewOpportunity:
		flag = p.NewOpportunities
	case NotificationTypeSystemUpdate:
		flag = p.SystemUpdates
	case NotificationTypeMarketing:
		flag = p.Marketing
	default:
		return true
	}

	return flag == nil || *flag
}

// PushEnabled reports whether the push channel is enabled. Only an explicit
// false disables it.
func (p *NotificationPreference) PushEnabled() bool {
	if p == nil {
		return true
	}

	return p.Channels.Push == nil || *p.Channels.Push
}
