package usecase

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device destination use cases
type DeviceUsecase interface {
	// RegisterDevice registers a device for a user, overwriting any previous token
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevice retrieves the user's registered device
	GetUserDevice(ctx context.Context, userID uuid.UUID) (*entity.UserDevice, error)

	// EvictToken removes the user's device destination. Evicting an absent
	// destination is a no-op, so repeated eviction is safe.
	EvictToken(ctx context.Context, userID uuid.UUID) error
}
