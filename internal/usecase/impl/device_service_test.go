package impl

import (
	"context"
	"testing"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/repository"
	mockRepo "fitsync/internal/mocks/repository"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	svc        usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		svc:        NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "ios",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_RegisterDevice_ExistingTokenReactivates(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	existing := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "fcm-token-1",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "fcm-token-1").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existing, nil)

	device, err := fx.svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, deviceID, device.ID)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-token").
		Return(nil)

	err := fx.svc.UpdateFCMToken(ctx, userID, deviceID, "new-token")
	assert.NoError(t, err)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.svc.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDeviceService_UpdateFCMToken_WrongOwner(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.svc.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	want := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(want, nil)

	devices, err := fx.svc.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, want, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceID).
		Return(nil)

	err := fx.svc.DeactivateDevice(ctx, userID, deviceID)
	assert.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_WrongOwner(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.svc.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
}
