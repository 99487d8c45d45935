package device

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	deviceerrors "assetdesk/internal/device/errors"
	"assetdesk/internal/shared/apperror"
)

//go:generate mockgen -source=device_service.go -destination=mock/device_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req AddDeviceRequest) (DeviceResponse, error)
	Update(ctx context.Context, id string, req UpdateDeviceRequest) (DeviceResponse, error)
	AddImages(ctx context.Context, id string, images []string) (DeviceResponse, error)
	AddUnits(ctx context.Context, id string, delta int) (DeviceResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (DeviceResponse, error)
	List(ctx context.Context, page, limit int, search string) ([]DeviceResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("device.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("device.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, req AddDeviceRequest) (DeviceResponse, error) {
	var details []string
	for _, f := range []struct{ value, message string }{
		{req.Model, "Device model is required"},
		{req.Manufacturer, "Device manufacturer is required"},
		{req.ScreenSize, "Device screen size is required"},
		{req.Processor, "Device processor is required"},
		{req.RAM, "Device RAM is required"},
		{req.Storage, "Device storage is required"},
		{req.Location, "Location is required"},
	} {
		if f.value == "" {
			details = append(details, f.message)
		}
	}
	if req.Units < 1 {
		details = append(details, "Total units is required")
	}
	if len(details) > 0 {
		return DeviceResponse{}, apperror.ErrMissingFields.WithDetails(details...)
	}

	// An identical non-deleted spec means the caller should top up units
	// on the existing entry instead of creating a twin.
	_, err := s.repo.FindBySpec(ctx,
		req.Model, req.Manufacturer, req.ScreenSize, req.Processor, req.RAM, req.Storage)
	if err == nil {
		return DeviceResponse{}, deviceerrors.ErrDeviceExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("device spec lookup failed", zap.Error(err))
		return DeviceResponse{}, err
	}

	d := &Device{
		ID:           uuid.New(),
		Model:        req.Model,
		Manufacturer: req.Manufacturer,
		ScreenSize:   req.ScreenSize,
		Processor:    req.Processor,
		RAM:          req.RAM,
		Storage:      req.Storage,
		TotalUnits:   req.Units,
		Images:       req.Images,
		Location:     req.Location,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("device persist failed", zap.Error(err))
		return DeviceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("device added",
		zap.String("device_id", d.ID.String()),
		zap.Int("units", d.TotalUnits),
	)
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDeviceRequest) (DeviceResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DeviceResponse{}, deviceerrors.ErrDeviceNotFound
	}

	if _, err := s.repo.FindByID(ctx, did); err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	// Partial update: absent fields stay untouched.
	fields := map[string]any{}
	if req.Model != "" {
		fields["model"] = req.Model
	}
	if req.Manufacturer != "" {
		fields["manufacturer"] = req.Manufacturer
	}
	if req.ScreenSize != "" {
		fields["screen_size"] = req.ScreenSize
	}
	if req.Processor != "" {
		fields["processor"] = req.Processor
	}
	if req.RAM != "" {
		fields["ram"] = req.RAM
	}
	if req.Storage != "" {
		fields["storage"] = req.Storage
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, did, fields); err != nil {
			s.logger.Error("device update failed", zap.String("device_id", id), zap.Error(err))
			return DeviceResponse{}, mapRepositoryError(err)
		}
	}

	d, err := s.repo.FindByID(ctx, did)
	if err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("device updated", zap.String("device_id", id))
	return mapToResponse(*d), nil
}

func (s *service) AddImages(ctx context.Context, id string, images []string) (DeviceResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DeviceResponse{}, deviceerrors.ErrDeviceNotFound
	}
	if len(images) == 0 {
		return DeviceResponse{}, apperror.ErrMissingFields.WithDetails("Device images are required")
	}

	ok, err := s.repo.AppendImages(ctx, did, images)
	if err != nil {
		s.logger.Error("device images update failed", zap.String("device_id", id), zap.Error(err))
		return DeviceResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return DeviceResponse{}, deviceerrors.ErrDeviceNotFound
	}

	d, err := s.repo.FindByID(ctx, did)
	if err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("device images added", zap.String("device_id", id), zap.Int("count", len(images)))
	return mapToResponse(*d), nil
}

func (s *service) AddUnits(ctx context.Context, id string, delta int) (DeviceResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DeviceResponse{}, deviceerrors.ErrDeviceNotFound
	}
	if delta == 0 {
		return DeviceResponse{}, deviceerrors.ErrUnitsRequired
	}

	if _, err := s.repo.FindByID(ctx, did); err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	ok, err := s.repo.AddUnits(ctx, did, delta)
	if err != nil {
		s.logger.Error("device units adjust failed", zap.String("device_id", id), zap.Error(err))
		return DeviceResponse{}, mapRepositoryError(err)
	}
	if !ok {
		// Missing row was ruled out above, so the precondition that
		// failed is the non-negative counter.
		return DeviceResponse{}, deviceerrors.ErrNoAvailableUnits
	}

	d, err := s.repo.FindByID(ctx, did)
	if err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("device units adjusted",
		zap.String("device_id", id),
		zap.Int("delta", delta),
		zap.Int("total_units", d.TotalUnits),
	)
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	did, err := uuid.Parse(id)
	if err != nil {
		return deviceerrors.ErrDeviceNotFound
	}

	if _, err := s.repo.FindByID(ctx, did); err != nil {
		return mapRepositoryError(err)
	}

	// Idempotent: flagging an already-deleted device is a no-op.
	if err := s.repo.SoftDelete(ctx, did); err != nil {
		s.logger.Error("device delete failed", zap.String("device_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("device deleted", zap.String("device_id", id))
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (DeviceResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DeviceResponse{}, deviceerrors.ErrDeviceNotFound
	}

	d, err := s.repo.FindActiveByID(ctx, did)
	if err != nil {
		return DeviceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) List(ctx context.Context, page, limit int, search string) ([]DeviceResponse, int64, error) {
	offset := (page - 1) * limit
	devices, total, err := s.repo.List(ctx, search, offset, limit)
	if err != nil {
		s.logger.Error("list devices failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	out := make([]DeviceResponse, len(devices))
	for i, d := range devices {
		out[i] = mapToResponse(d)
	}
	return out, total, nil
}
