package employee_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"assetdesk/internal/employee"
	employeeerrors "assetdesk/internal/employee/errors"
	employeeMock "assetdesk/internal/employee/mock"
)

func setupServiceTest(t *testing.T) (employee.Service, *employeeMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	return employee.NewService(repo), repo
}

func validOnboardRequest() employee.OnboardRequest {
	return employee.OnboardRequest{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada.obi@example.com",
		StaffID:   "STF-042",
		Role:      employee.RoleDeveloper,
	}
}

func TestEmployeeService_Onboard(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()

	t.Run("success records the onboarding manager", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		req := validOnboardRequest()

		repo.EXPECT().
			EmailInUse(ctx, req.Email).
			Return(false, nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, managerID, e.OnboardedByID)
				assert.Equal(t, req.Email, e.Email)
				assert.False(t, e.OnboardingDate.IsZero())
				return nil
			})

		resp, err := svc.Onboard(ctx, managerID.String(), req)
		assert.NoError(t, err)
		assert.Equal(t, managerID.String(), resp.OnboardedByID)
	})

	t.Run("email held by a user account is rejected", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		req := validOnboardRequest()

		repo.EXPECT().
			EmailInUse(ctx, req.Email).
			Return(true, nil)

		_, err := svc.Onboard(ctx, managerID.String(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("unknown role category is rejected", func(t *testing.T) {
		svc, _ := setupServiceTest(t)
		req := validOnboardRequest()
		req.Role = "ASTRONAUT"

		_, err := svc.Onboard(ctx, managerID.String(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("unknown id", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id.String(), employee.UpdateEmployeeRequest{FirstName: "Ada"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{ID: id, FirstName: "Ada", Role: employee.RoleDeveloper}, nil)
		repo.EXPECT().
			UpdateFields(ctx, id, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, fields map[string]any) error {
				assert.Equal(t, map[string]any{"office_location": "Abuja"}, fields)
				return nil
			})
		repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{ID: id, FirstName: "Ada", OfficeLocation: "Abuja", Role: employee.RoleDeveloper}, nil)

		resp, err := svc.Update(ctx, id.String(), employee.UpdateEmployeeRequest{OfficeLocation: "Abuja"})
		assert.NoError(t, err)
		assert.Equal(t, "Abuja", resp.OfficeLocation)
		assert.Equal(t, "Ada", resp.FirstName)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("page translates to offset", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			List(ctx, "ada", 20, 10).
			Return([]employee.Employee{{ID: uuid.New(), FirstName: "Ada"}}, int64(21), nil)

		out, total, err := svc.List(ctx, 3, 10, "ada")
		assert.NoError(t, err)
		assert.Equal(t, int64(21), total)
		assert.Len(t, out, 1)
	})
}
