package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"assetdesk/internal/employee"
	"assetdesk/internal/shared/contextutil"
	"assetdesk/internal/shared/response"
)

type fakeEmployeeService struct {
	OnboardFn      func(ctx context.Context, onboardedByID string, req employee.OnboardRequest) (employee.EmployeeResponse, error)
	UpdateFn       func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateAvatarFn func(ctx context.Context, id, avatar string) (employee.EmployeeResponse, error)
	GetByIDFn      func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListFn         func(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error)
}

func (f *fakeEmployeeService) Onboard(ctx context.Context, onboardedByID string, req employee.OnboardRequest) (employee.EmployeeResponse, error) {
	return f.OnboardFn(ctx, onboardedByID, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) UpdateAvatar(ctx context.Context, id, avatar string) (employee.EmployeeResponse, error) {
	return f.UpdateAvatarFn(ctx, id, avatar)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) List(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error) {
	return f.ListFn(ctx, page, limit, search)
}

// setupRouter mounts the employee routes with pass-through middleware, plus an
// optional authn stub that seeds the request context with a caller identity.
func setupRouter(svc employee.Service, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authn := func(c *gin.Context) {
		if callerID != "" {
			ctx := contextutil.WithUserID(c.Request.Context(), callerID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
	pass := func(c *gin.Context) { c.Next() }
	employee.RegisterRoutes(r.Group("/api/v1"), employee.NewHandler(svc), authn, pass)
	return r
}

const onboardBody = `{"firstName":"Ada","lastName":"Obi","email":"ada@corp.example","staffId":"STF-001","role":"DEVELOPER"}`

func TestEmployeeHandler_Onboard(t *testing.T) {
	t.Run("records caller as onboarding manager", func(t *testing.T) {
		managerID := uuid.New().String()
		svc := &fakeEmployeeService{
			OnboardFn: func(ctx context.Context, onboardedByID string, req employee.OnboardRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, managerID, onboardedByID)
				assert.Equal(t, "ada@corp.example", req.Email)
				return employee.EmployeeResponse{ID: uuid.New().String(), Email: req.Email, OnboardedByID: onboardedByID}, nil
			},
		}
		r := setupRouter(svc, managerID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/onboard", strings.NewReader(onboardBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
	})

	t.Run("no caller identity in context", func(t *testing.T) {
		svc := &fakeEmployeeService{
			OnboardFn: func(ctx context.Context, onboardedByID string, req employee.OnboardRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called without a caller identity")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := setupRouter(svc, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/onboard", strings.NewReader(onboardBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
