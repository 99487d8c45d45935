package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"assetdesk/internal/assignment"
	assignmenterrors "assetdesk/internal/assignment/errors"
	assignmentMock "assetdesk/internal/assignment/mock"
	"assetdesk/internal/device"
	deviceerrors "assetdesk/internal/device/errors"
	deviceMock "assetdesk/internal/device/mock"
	"assetdesk/internal/employee"
	employeeMock "assetdesk/internal/employee/mock"
	"assetdesk/internal/shared/apperror"
)

type serviceDeps struct {
	service   assignment.Service
	repo      *assignmentMock.MockRepository
	devices   *deviceMock.MockRepository
	employees *employeeMock.MockRepository
}

// The service is built without a database handle, so the transaction
// wrapper hands the repos a nil tx and WithTx returns the mock itself.
func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := assignmentMock.NewMockRepository(ctrl)
	devices := deviceMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	devices.EXPECT().WithTx(gomock.Any()).Return(devices).AnyTimes()

	svc := assignment.NewService(nil, repo, devices, employees)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		devices:   devices,
		employees: employees,
	}
}

func validAssignRequest(employeeID, deviceID, managerID uuid.UUID) assignment.AssignRequest {
	return assignment.AssignRequest{
		EmployeeID:   employeeID.String(),
		DeviceID:     deviceID.String(),
		AssignedOn:   "2026-08-01",
		AssignedByID: managerID.String(),
		Remark:       "new starter laptop",
	}
}

func TestAssignmentService_Assign(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	deviceID := uuid.New()
	managerID := uuid.New()

	t.Run("missing fields collect one detail each", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Assign(ctx, assignment.AssignRequest{Remark: "no ids"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details, "Employee is required")
		assert.Contains(t, appErr.Details, "Device is required")
		assert.Contains(t, appErr.Details, "Assignment date is required")
		assert.Contains(t, appErr.Details, "Assigning manager is required")
	})

	t.Run("missing device is a not found, not exhausted stock", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().
			FindByID(ctx, employeeID).
			Return(&employee.Employee{ID: employeeID}, nil)
		deps.devices.EXPECT().
			FindActiveByID(ctx, deviceID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Assign(ctx, validAssignRequest(employeeID, deviceID, managerID))
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceNotFound)
	})

	t.Run("exhausted pool creates no assignment row", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().
			FindByID(ctx, employeeID).
			Return(&employee.Employee{ID: employeeID}, nil)
		deps.devices.EXPECT().
			FindActiveByID(ctx, deviceID).
			Return(&device.Device{ID: deviceID, TotalUnits: 0}, nil)
		deps.devices.EXPECT().
			TakeUnit(ctx, deviceID).
			Return(false, nil)

		_, err := deps.service.Assign(ctx, validAssignRequest(employeeID, deviceID, managerID))
		assert.ErrorIs(t, err, deviceerrors.ErrNoAvailableUnits)
	})

	t.Run("success decrements the pool and writes the record together", func(t *testing.T) {
		deps := setupServiceTest(t)
		var createdID uuid.UUID

		deps.employees.EXPECT().
			FindByID(ctx, employeeID).
			Return(&employee.Employee{ID: employeeID}, nil)
		deps.devices.EXPECT().
			FindActiveByID(ctx, deviceID).
			Return(&device.Device{ID: deviceID, TotalUnits: 1}, nil)
		deps.devices.EXPECT().
			TakeUnit(ctx, deviceID).
			Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, record *assignment.EmployeeDevice) error {
				assert.Equal(t, employeeID, record.EmployeeID)
				assert.Equal(t, deviceID, record.DeviceID)
				assert.Equal(t, managerID, record.AssignedByID)
				assert.False(t, record.IsRetrieved)
				assert.Equal(t, "2026-08-01", record.AssignedOn.Format("2006-01-02"))
				createdID = record.ID
				return nil
			})
		deps.repo.EXPECT().
			FindByID(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) (*assignment.EmployeeDevice, error) {
				assert.Equal(t, createdID, id)
				return &assignment.EmployeeDevice{
					ID:           id,
					EmployeeID:   employeeID,
					DeviceID:     deviceID,
					AssignedByID: managerID,
					AssignedOn:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
					Employee:     &employee.Employee{ID: employeeID, FirstName: "Ada"},
					Device:       &device.Device{ID: deviceID, Model: "ThinkPad T14"},
				}, nil
			})

		resp, err := deps.service.Assign(ctx, validAssignRequest(employeeID, deviceID, managerID))
		assert.NoError(t, err)
		assert.False(t, resp.IsRetrieved)
		assert.Equal(t, "ThinkPad T14", resp.Device.Model)
		assert.Equal(t, "Ada", resp.Employee.FirstName)
	})

	t.Run("malformed date is rejected before any lookup", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validAssignRequest(employeeID, deviceID, managerID)
		req.AssignedOn = "01/08/2026"

		_, err := deps.service.Assign(ctx, req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.HTTPStatus)
	})
}

func TestAssignmentService_Retrieve(t *testing.T) {
	ctx := context.Background()
	assignmentID := uuid.New()
	deviceID := uuid.New()
	managerID := uuid.New()

	req := assignment.RetrieveRequest{
		DeviceID:      deviceID.String(),
		RetrievedOn:   "2026-08-15",
		RetrievedByID: managerID.String(),
		Remark:        "returned at offboarding",
	}

	t.Run("second retrieval does not re-increment the pool", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.devices.EXPECT().
			FindByID(ctx, deviceID).
			Return(&device.Device{ID: deviceID}, nil)
		deps.repo.EXPECT().
			MarkRetrieved(ctx, assignmentID, gomock.Any(), managerID, req.Remark).
			Return(false, nil)

		_, err := deps.service.Retrieve(ctx, assignmentID.String(), req)
		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
	})

	t.Run("unknown device is rejected before touching the record", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.devices.EXPECT().
			FindByID(ctx, deviceID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Retrieve(ctx, assignmentID.String(), req)
		assert.ErrorIs(t, err, deviceerrors.ErrDeviceNotFound)
	})

	t.Run("success closes the loan and returns the unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		retrievedOn := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

		deps.devices.EXPECT().
			FindByID(ctx, deviceID).
			Return(&device.Device{ID: deviceID}, nil)
		deps.repo.EXPECT().
			MarkRetrieved(ctx, assignmentID, retrievedOn, managerID, req.Remark).
			Return(true, nil)
		deps.devices.EXPECT().
			ReturnUnit(ctx, deviceID).
			Return(nil)
		deps.repo.EXPECT().
			FindByID(ctx, assignmentID).
			Return(&assignment.EmployeeDevice{
				ID:          assignmentID,
				DeviceID:    deviceID,
				IsRetrieved: true,
				RetrievedOn: &retrievedOn,
			}, nil)

		resp, err := deps.service.Retrieve(ctx, assignmentID.String(), req)
		assert.NoError(t, err)
		assert.True(t, resp.IsRetrieved)
		assert.Equal(t, "2026-08-15", resp.RetrievedOn)
	})

	t.Run("missing fields collect one detail each", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Retrieve(ctx, assignmentID.String(), assignment.RetrieveRequest{})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details, "Device is required")
		assert.Contains(t, appErr.Details, "Retrieval date is required")
		assert.Contains(t, appErr.Details, "Retrieving manager is required")
	})
}

func TestAssignmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
	})
}
