package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	employeeerrors "assetdesk/internal/employee/errors"
	"assetdesk/internal/shared/apperror"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Onboard(ctx context.Context, onboardedByID string, req OnboardRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, page, limit int, search string) ([]EmployeeResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Onboard(ctx context.Context, onboardedByID string, req OnboardRequest) (EmployeeResponse, error) {
	managerID, err := uuid.Parse(onboardedByID)
	if err != nil {
		return EmployeeResponse{}, apperror.ErrUnauthorized
	}
	if !IsValidRole(req.Role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	taken, err := s.repo.EmailInUse(ctx, req.Email)
	if err != nil {
		s.logger.Error("email lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	e := &Employee{
		ID:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		StaffID:        req.StaffID,
		PhoneNumber:    req.PhoneNumber,
		OfficeLocation: req.OfficeLocation,
		Role:           req.Role,
		Avatar:         req.Avatar,
		OnboardedByID:  managerID,
		OnboardingDate: time.Now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee onboarded",
		zap.String("employee_id", e.ID.String()),
		zap.String("onboarded_by", managerID.String()),
	)
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if req.Role != "" && !IsValidRole(req.Role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	if _, err := s.repo.FindByID(ctx, eid); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	fields := map[string]any{}
	if req.FirstName != "" {
		fields["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		fields["last_name"] = req.LastName
	}
	if req.PhoneNumber != "" {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.OfficeLocation != "" {
		fields["office_location"] = req.OfficeLocation
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, eid, fields); err != nil {
			s.logger.Error("employee update failed", zap.String("employee_id", id), zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee updated", zap.String("employee_id", id))
	return mapToResponse(*e), nil
}

func (s *service) UpdateAvatar(ctx context.Context, id, avatar string) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.UpdateFields(ctx, eid, map[string]any{"avatar": avatar}); err != nil {
		s.logger.Error("employee avatar update failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	e.Avatar = avatar

	return mapToResponse(*e), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) List(ctx context.Context, page, limit int, search string) ([]EmployeeResponse, int64, error) {
	offset := (page - 1) * limit
	employees, total, err := s.repo.List(ctx, search, offset, limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	out := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = mapToResponse(e)
	}
	return out, total, nil
}
