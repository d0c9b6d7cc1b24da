package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationPreference_Allows_NilRecordAllowsEverything(t *testing.T) {
	var prefs *NotificationPreference

	for _, notificationType := range []NotificationType{
		NotificationTypePriceAlert,
		NotificationTypeDealUpdate,
		NotificationTypeNewOpportunity,
		NotificationTypeSystemUpdate,
		NotificationTypeMarketing,
		NotificationType("future_type"),
	} {
		assert.True(t, prefs.Allows(notificationType), "type %s", notificationType)
	}

	assert.True(t, prefs.PushEnabled())
}

func TestNotificationPreference_Allows_OnlyExplicitFalseBlocks(t *testing.T) {
	enabled := true
	disabled := false

	prefs := &NotificationPreference{
		PriceAlerts: &enabled,
		DealUpdates: &disabled,
		// NewOpportunities left unset.
	}

	assert.True(t, prefs.Allows(NotificationTypePriceAlert))
	assert.False(t, prefs.Allows(NotificationTypeDealUpdate))
	assert.True(t, prefs.Allows(NotificationTypeNewOpportunity))
	assert.True(t, prefs.Allows(NotificationTypeSystemUpdate))
	assert.True(t, prefs.Allows(NotificationTypeMarketing))
}

func TestNotificationPreference_Allows_UnknownTypeAllowed(t *testing.T) {
	disabled := false

	// Blocking every mapped flag still does not block a type with no flag.
	prefs := &NotificationPreference{
		PriceAlerts:      &disabled,
		DealUpdates:      &disabled,
		NewOpportunities: &disabled,
		SystemUpdates:    &disabled,
		Marketing:        &disabled,
	}

	assert.True(t, prefs.Allows(NotificationType("future_type")))
}

func TestNotificationPreference_PushEnabled(t *testing.T) {
	enabled := true
	disabled := false

	assert.True(t, (&NotificationPreference{}).PushEnabled())
	assert.True(t, (&NotificationPreference{Channels: ChannelSettings{Push: &enabled}}).PushEnabled())
	assert.False(t, (&NotificationPreference{Channels: ChannelSettings{Push: &disabled}}).PushEnabled())
}

func TestNotificationType_Retention(t *testing.T) {
	assert.Equal(t, 7*24, int(NotificationTypePriceAlert.Retention().Hours()))
	assert.Equal(t, 30*24, int(NotificationTypeDealUpdate.Retention().Hours()))
	assert.Equal(t, 7*24, int(NotificationTypeNewOpportunity.Retention().Hours()))
	assert.Equal(t, 90*24, int(NotificationTypeSystemUpdate.Retention().Hours()))
	assert.Equal(t, 30*24, int(NotificationTypeMarketing.Retention().Hours()))
}
