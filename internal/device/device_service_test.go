package device_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"assetdesk/internal/device"
	deviceerrors "assetdesk/internal/device/errors"
	deviceMock "assetdesk/internal/device/mock"
	"assetdesk/internal/shared/apperror"
)

func setupServiceTest(t *testing.T) (device.Service, *deviceMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := deviceMock.NewMockRepository(ctrl)
	return device.NewService(repo), repo
}

func validAddRequest() device.AddDeviceRequest {
	return device.AddDeviceRequest{
		Model:        "ThinkPad T14",
		Manufacturer: "Lenovo",
		ScreenSize:   "14",
		Processor:    "Ryzen 7 Pro",
		RAM:          "32GB",
		Storage:      "1TB",
		Units:        5,
		Location:     "Lagos HQ",
	}
}

func TestDeviceService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields collect one detail each", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Add(ctx, device.AddDeviceRequest{Model: "ThinkPad T14"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.ErrMissingFields.Message, appErr.Message)
		assert.Contains(t, appErr.Details, "Device manufacturer is required")
		assert.Contains(t, appErr.Details, "Total units is required")
		assert.Contains(t, appErr.Details, "Location is required")
		assert.NotContains(t, appErr.Details, "Device model is required")
	})

	t.Run("exact spec duplicate is rejected", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		req := validAddRequest()

		repo.EXPECT().
			FindBySpec(ctx, req.Model, req.Manufacturer, req.ScreenSize, req.Processor, req.RAM, req.Storage).
			Return(&device.Device{ID: uuid.New()}, nil)

		_, err := svc.Add(ctx, req)
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceExists)
	})

	t.Run("success seeds the unit counter", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		req := validAddRequest()

		repo.EXPECT().
			FindBySpec(ctx, req.Model, req.Manufacturer, req.ScreenSize, req.Processor, req.RAM, req.Storage).
			Return(nil, gorm.ErrRecordNotFound)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *device.Device) error {
				assert.Equal(t, req.Units, d.TotalUnits)
				assert.Equal(t, req.Model, d.Model)
				assert.NotEqual(t, uuid.Nil, d.ID)
				return nil
			})

		resp, err := svc.Add(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalUnits)
	})
}

func TestDeviceService_AddUnits(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("zero delta is rejected", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.AddUnits(ctx, id.String(), 0)
		assert.ErrorIs(t, err, deviceerrors.ErrUnitsRequired)
	})

	t.Run("unknown id is a not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AddUnits(ctx, id.String(), 3)
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceNotFound)
	})

	t.Run("relative increment is applied", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id, TotalUnits: 5}, nil)
		repo.EXPECT().
			AddUnits(ctx, id, 3).
			Return(true, nil)
		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id, TotalUnits: 8}, nil)

		resp, err := svc.AddUnits(ctx, id.String(), 3)
		assert.NoError(t, err)
		assert.Equal(t, 8, resp.TotalUnits)
	})

	t.Run("decrement below zero is refused", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id, TotalUnits: 2}, nil)
		repo.EXPECT().
			AddUnits(ctx, id, -5).
			Return(false, nil)

		_, err := svc.AddUnits(ctx, id.String(), -5)
		assert.ErrorIs(t, err, deviceerrors.ErrNoAvailableUnits)
	})
}

func TestDeviceService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("repeat delete stays a no-op success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id}, nil).
			Times(2)
		repo.EXPECT().
			SoftDelete(ctx, id).
			Return(nil).
			Times(2)

		assert.NoError(t, svc.Delete(ctx, id.String()))
		assert.NoError(t, svc.Delete(ctx, id.String()))
	})

	t.Run("unknown id is a not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id.String()), deviceerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("soft deleted devices act as missing", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindActiveByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceNotFound)
	})

	t.Run("malformed id short-circuits", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_AddImages(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("append is delegated to the repository", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			AppendImages(ctx, id, []string{"front.png", "back.png"}).
			Return(true, nil)
		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id, Model: "ThinkPad T14", Images: []string{"old.png", "front.png", "back.png"}}, nil)

		resp, err := svc.AddImages(ctx, id.String(), []string{"front.png", "back.png"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"old.png", "front.png", "back.png"}, resp.Images)
	})

	t.Run("unknown device", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			AppendImages(ctx, id, []string{"front.png"}).
			Return(false, nil)

		_, err := svc.AddImages(ctx, id.String(), []string{"front.png"})
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceNotFound)
	})

	t.Run("empty image list", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.AddImages(ctx, id.String(), nil)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.ErrMissingFields.Message, appErr.Message)
		assert.Equal(t, []string{"Device images are required"}, appErr.Details)
	})
}

func TestDeviceService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("only provided fields are written", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id, Model: "ThinkPad T14", Location: "Lagos HQ"}, nil)
		repo.EXPECT().
			UpdateFields(ctx, id, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, fields map[string]any) error {
				assert.Equal(t, map[string]any{"location": "Abuja"}, fields)
				return nil
			})
		repo.EXPECT().
			FindByID(ctx, id).
			Return(&device.Device{ID: id, Model: "ThinkPad T14", Location: "Abuja"}, nil)

		resp, err := svc.Update(ctx, id.String(), device.UpdateDeviceRequest{Location: "Abuja"})
		assert.NoError(t, err)
		assert.Equal(t, "Abuja", resp.Location)
		assert.Equal(t, "ThinkPad T14", resp.Model)
	})
}
