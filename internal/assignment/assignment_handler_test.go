package assignment_test

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

	"assetdesk/internal/assignment"
	assignmenterrors "assetdesk/internal/assignment/errors"
	deviceerrors "assetdesk/internal/device/errors"
	"assetdesk/internal/shared/response"
)

type fakeAssignmentService struct {
	AssignFn   func(ctx context.Context, req assignment.AssignRequest) (assignment.AssignmentResponse, error)
	RetrieveFn func(ctx context.Context, id string, req assignment.RetrieveRequest) (assignment.AssignmentResponse, error)
	GetByIDFn  func(ctx context.Context, id string) (assignment.AssignmentResponse, error)
	ListFn     func(ctx context.Context, page, limit int) ([]assignment.AssignmentResponse, int64, error)
}

func (f *fakeAssignmentService) Assign(ctx context.Context, req assignment.AssignRequest) (assignment.AssignmentResponse, error) {
	return f.AssignFn(ctx, req)
}
func (f *fakeAssignmentService) Retrieve(ctx context.Context, id string, req assignment.RetrieveRequest) (assignment.AssignmentResponse, error) {
	return f.RetrieveFn(ctx, id, req)
}
func (f *fakeAssignmentService) GetByID(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAssignmentService) List(ctx context.Context, page, limit int) ([]assignment.AssignmentResponse, int64, error) {
	return f.ListFn(ctx, page, limit)
}

func setupRouter(svc assignment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pass := func(c *gin.Context) { c.Next() }
	assignment.RegisterRoutes(r.Group("/api/v1"), assignment.NewHandler(svc), pass, pass, pass)
	return r
}

func TestAssignmentHandler_Assign(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeAssignmentService{
			AssignFn: func(ctx context.Context, req assignment.AssignRequest) (assignment.AssignmentResponse, error) {
				assert.Equal(t, "2026-08-01", req.AssignedOn)
				return assignment.AssignmentResponse{ID: uuid.New().String()}, nil
			},
		}
		r := setupRouter(svc)

		body := `{"employeeId":"` + uuid.New().String() + `","deviceId":"` + uuid.New().String() +
			`","assignedOn":"2026-08-01","assignedById":"` + uuid.New().String() + `","remark":"laptop"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employee/devices/assign", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, "Device assigned successfully", env.Message)
	})

	t.Run("exhausted pool maps to 422", func(t *testing.T) {
		svc := &fakeAssignmentService{
			AssignFn: func(ctx context.Context, req assignment.AssignRequest) (assignment.AssignmentResponse, error) {
				return assignment.AssignmentResponse{}, deviceerrors.ErrNoAvailableUnits
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employee/devices/assign", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, deviceerrors.ErrNoAvailableUnits.Message, env.Message)
	})
}

func TestAssignmentHandler_Retrieve(t *testing.T) {
	t.Run("unknown or closed loan maps to 404", func(t *testing.T) {
		svc := &fakeAssignmentService{
			RetrieveFn: func(ctx context.Context, id string, req assignment.RetrieveRequest) (assignment.AssignmentResponse, error) {
				return assignment.AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employee/devices/"+uuid.New().String()+"/retrieve",
			strings.NewReader(`{"deviceId":"`+uuid.New().String()+`","retrievedOn":"2026-08-15","retrievedById":"`+uuid.New().String()+`"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Employee device not found", env.Message)
	})
}

func TestAssignmentHandler_List(t *testing.T) {
	t.Run("explicit paging reaches the service", func(t *testing.T) {
		svc := &fakeAssignmentService{
			ListFn: func(ctx context.Context, page, limit int) ([]assignment.AssignmentResponse, int64, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return nil, 0, nil
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employee/devices/all?page=2&limit=5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
