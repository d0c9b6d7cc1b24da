// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a user has no registered device.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrTooManyIDs is returned when a batched lookup exceeds MaxIDBatch.
	ErrTooManyIDs = errors.New("id batch exceeds query limit")
)

// MaxIDBatch is the largest id list a single FindDevicesForUsers call
// accepts. Callers with more recipients must chunk the list themselves.
const MaxIDBatch = 10

// DeviceRepository defines the interface for device-token persistence.
type DeviceRepository interface {
	// FindDeviceByUser retrieves the user's registered device, or
	// ErrDeviceNotFound when the user has none.
	FindDeviceByUser(ctx context.Context, userID uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesForUsers retrieves the devices registered by the given
	// users. At most MaxIDBatch ids per call; users without a device are
	// simply absent from the result.
	FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpsertDevice registers a device for a user, overwriting any previous token.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// DeleteDeviceByUser removes the user's device row. Removing an absent
	// row is a no-op, not an error.
	DeleteDeviceByUser(ctx context.Context, userID uuid.UUID) error
}
