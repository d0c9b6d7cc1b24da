package impl

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"
	"mandi/internal/domain/repository"
	mockRepo "mandi/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_GetPreferences_DefaultsWhenAbsent(t *testing.T) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(preferenceRepo)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	prefs, err := svc.GetPreferences(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, userID, prefs.UserID)

	// The empty record filters as allow-all.
	assert.True(t, prefs.Allows(entity.NotificationTypeMarketing))
	assert.True(t, prefs.PushEnabled())
}

func TestPreferenceService_GetPreferences_LookupFailure(t *testing.T) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(preferenceRepo)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, errors.New("db connection lost"))

	_, err := svc.GetPreferences(ctx, userID)
	assert.Error(t, err)
}

func TestPreferenceService_UpdatePreferences_RequiresUserID(t *testing.T) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(preferenceRepo)

	ctx := context.Background()

	assert.Error(t, svc.UpdatePreferences(ctx, nil))
	assert.Error(t, svc.UpdatePreferences(ctx, &entity.NotificationPreference{}))
}

func TestPreferenceService_OptOut_SetsOnlyOneFlag(t *testing.T) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(preferenceRepo)

	ctx := context.Background()
	userID := uuid.New()
	marketingOff := false

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(&entity.NotificationPreference{
			UserID:    userID,
			Marketing: &marketingOff,
		}, nil)

	var saved *entity.NotificationPreference

	preferenceRepo.EXPECT().
		UpsertPreference(ctx, mock.AnythingOfType("*entity.NotificationPreference")).
		Run(func(ctx context.Context, pref *entity.NotificationPreference) {
			saved = pref
		}).
		Return(nil)

	err := svc.OptOut(ctx, userID, entity.NotificationTypePriceAlert)
	require.NoError(t, err)
	require.NotNil(t, saved)

	require.NotNil(t, saved.PriceAlerts)
	assert.False(t, *saved.PriceAlerts)

	// The earlier opt-out survives and untouched flags stay unset.
	require.NotNil(t, saved.Marketing)
	assert.False(t, *saved.Marketing)
	assert.Nil(t, saved.DealUpdates)
	assert.Nil(t, saved.SystemUpdates)
	assert.Nil(t, saved.NewOpportunities)
}

func TestPreferenceService_OptOut_FirstTimeUser(t *testing.T) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(preferenceRepo)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	var saved *entity.NotificationPreference

	preferenceRepo.EXPECT().
		UpsertPreference(ctx, mock.AnythingOfType("*entity.NotificationPreference")).
		Run(func(ctx context.Context, pref *entity.NotificationPreference) {
			saved = pref
		}).
		Return(nil)

	err := svc.OptOut(ctx, userID, entity.NotificationTypeMarketing)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	require.NotNil(t, saved.Marketing)
	assert.False(t, *saved.Marketing)
}

func TestPreferenceService_OptOut_UnknownType(t *testing.T) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(preferenceRepo)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	err := svc.OptOut(ctx, userID, entity.NotificationType("carrier_pigeon"))
	assert.Error(t, err)
}
