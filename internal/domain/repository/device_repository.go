package repository

import (
	"context"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when registering an already-known device.
	ErrDuplicateDevice = errors.New("device already registered")
)

// DeviceRepository manages the push-notification devices a user has
// registered.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its id.
	FindDeviceByID(ctx context.Context, deviceID uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a user, active or not.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the FCM token for a device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device inactive, typically after Firebase
	// reports its token unregistered.
	DeactivateDevice(ctx context.Context, deviceID uuid.UUID) error
}
