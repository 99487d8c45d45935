package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmenterrors "assetdesk/internal/assignment/errors"
	"assetdesk/internal/device"
	deviceerrors "assetdesk/internal/device/errors"
	"assetdesk/internal/employee"
	employeeerrors "assetdesk/internal/employee/errors"
	"assetdesk/internal/shared/apperror"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	Retrieve(ctx context.Context, id string, req RetrieveRequest) (AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	List(ctx context.Context, page, limit int) ([]AssignmentResponse, int64, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	devices   device.Repository
	employees employee.Repository
	logger    *zap.Logger
}

// NewService accepts a nil db for unit tests; runTx then invokes the
// callback outside a transaction and the repos fall back to their own
// handles.
func NewService(db *gorm.DB, repo Repository, devices device.Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{db: db, repo: repo, devices: devices, employees: employees, logger: l}
}

func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *service) Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error) {
	var details []string
	for _, f := range []struct{ value, message string }{
		{req.EmployeeID, "Employee is required"},
		{req.DeviceID, "Device is required"},
		{req.AssignedOn, "Assignment date is required"},
		{req.AssignedByID, "Assigning manager is required"},
	} {
		if f.value == "" {
			details = append(details, f.message)
		}
	}
	if len(details) > 0 {
		return AssignmentResponse{}, apperror.ErrMissingFields.WithDetails(details...)
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return AssignmentResponse{}, deviceerrors.ErrDeviceNotFound
	}
	assignedByID, err := uuid.Parse(req.AssignedByID)
	if err != nil {
		return AssignmentResponse{}, apperror.InvalidField("Assigning manager")
	}
	assignedOn, err := time.Parse(dateLayout, req.AssignedOn)
	if err != nil {
		return AssignmentResponse{}, apperror.InvalidField("Assignment date")
	}

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return AssignmentResponse{}, mapEmployeeError(err)
	}
	// Existence is checked up front so a missing device surfaces as 404
	// instead of masquerading as exhausted stock.
	if _, err := s.devices.FindActiveByID(ctx, deviceID); err != nil {
		return AssignmentResponse{}, mapDeviceError(err)
	}

	record := &EmployeeDevice{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		DeviceID:     deviceID,
		AssignedOn:   assignedOn,
		AssignedByID: assignedByID,
		Remark:       req.Remark,
	}

	// The decrement and the insert commit or roll back together. The
	// conditional UPDATE takes the row lock, so two assigns racing for
	// the last unit serialize and the loser sees zero rows affected.
	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		taken, err := s.devices.WithTx(tx).TakeUnit(ctx, deviceID)
		if err != nil {
			return err
		}
		if !taken {
			return deviceerrors.ErrNoAvailableUnits
		}
		return s.repo.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		if apperror.Is(err) {
			return AssignmentResponse{}, err
		}
		s.logger.Error("device assign failed",
			zap.String("device_id", deviceID.String()),
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("device assigned",
		zap.String("assignment_id", record.ID.String()),
		zap.String("device_id", deviceID.String()),
		zap.String("employee_id", employeeID.String()),
	)

	full, err := s.repo.FindByID(ctx, record.ID)
	if err != nil {
		// The write committed; fall back to the bare record.
		return mapToResponse(*record), nil
	}
	return mapToResponse(*full), nil
}

func (s *service) Retrieve(ctx context.Context, id string, req RetrieveRequest) (AssignmentResponse, error) {
	var details []string
	for _, f := range []struct{ value, message string }{
		{req.DeviceID, "Device is required"},
		{req.RetrievedOn, "Retrieval date is required"},
		{req.RetrievedByID, "Retrieving manager is required"},
	} {
		if f.value == "" {
			details = append(details, f.message)
		}
	}
	if len(details) > 0 {
		return AssignmentResponse{}, apperror.ErrMissingFields.WithDetails(details...)
	}

	assignmentID, err := uuid.Parse(id)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
	}
	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return AssignmentResponse{}, deviceerrors.ErrDeviceNotFound
	}
	retrievedByID, err := uuid.Parse(req.RetrievedByID)
	if err != nil {
		return AssignmentResponse{}, apperror.InvalidField("Retrieving manager")
	}
	retrievedOn, err := time.Parse(dateLayout, req.RetrievedOn)
	if err != nil {
		return AssignmentResponse{}, apperror.InvalidField("Retrieval date")
	}

	// A soft-deleted device still accepts returns, so the lookup here
	// ignores the deletion flag.
	if _, err := s.devices.FindByID(ctx, deviceID); err != nil {
		return AssignmentResponse{}, mapDeviceError(err)
	}

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		closed, err := s.repo.WithTx(tx).MarkRetrieved(ctx, assignmentID, retrievedOn, retrievedByID, req.Remark)
		if err != nil {
			return err
		}
		if !closed {
			// Unknown id or already retrieved, indistinguishable on purpose.
			return assignmenterrors.ErrAssignmentNotFound
		}
		return s.devices.WithTx(tx).ReturnUnit(ctx, deviceID)
	})
	if err != nil {
		if apperror.Is(err) {
			return AssignmentResponse{}, err
		}
		s.logger.Error("device retrieval failed",
			zap.String("assignment_id", assignmentID.String()),
			zap.String("device_id", deviceID.String()),
			zap.Error(err),
		)
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("device retrieved",
		zap.String("assignment_id", assignmentID.String()),
		zap.String("device_id", deviceID.String()),
	)

	full, err := s.repo.FindByID(ctx, assignmentID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*full), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AssignmentResponse, error) {
	assignmentID, err := uuid.Parse(id)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
	}

	record, err := s.repo.FindByID(ctx, assignmentID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*record), nil
}

func (s *service) List(ctx context.Context, page, limit int) ([]AssignmentResponse, int64, error) {
	offset := (page - 1) * limit
	records, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	out := make([]AssignmentResponse, len(records))
	for i, record := range records {
		out[i] = mapToResponse(record)
	}
	return out, total, nil
}
