package impl

import (
	"context"
	"fmt"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a device for a user, overwriting any previous token
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}
	if deviceInfo == nil || deviceInfo.FCMToken == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token is required")
	}
	if deviceInfo.Platform == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform is required")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		Platform: deviceInfo.Platform,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to register device: %w", err)
	}

	return device, nil
}

// GetUserDevice retrieves the user's registered device
func (s *deviceService) GetUserDevice(ctx context.Context, userID uuid.UUID) (*entity.UserDevice, error) {
	return s.deviceRepo.FindDeviceByUser(ctx, userID)
}

// EvictToken removes the user's device destination. The underlying delete is
// a no-op for an absent row, so calling this twice ends in the same state as
// calling it once.
func (s *deviceService) EvictToken(ctx context.Context, userID uuid.UUID) error {
	return s.deviceRepo.DeleteDeviceByUser(ctx, userID)
}
