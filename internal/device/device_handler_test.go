package device_test

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

	"assetdesk/internal/device"
	deviceerrors "assetdesk/internal/device/errors"
	"assetdesk/internal/shared/response"
)

type fakeDeviceService struct {
	AddFn       func(ctx context.Context, req device.AddDeviceRequest) (device.DeviceResponse, error)
	UpdateFn    func(ctx context.Context, id string, req device.UpdateDeviceRequest) (device.DeviceResponse, error)
	AddImagesFn func(ctx context.Context, id string, images []string) (device.DeviceResponse, error)
	AddUnitsFn  func(ctx context.Context, id string, delta int) (device.DeviceResponse, error)
	DeleteFn    func(ctx context.Context, id string) error
	GetByIDFn   func(ctx context.Context, id string) (device.DeviceResponse, error)
	ListFn      func(ctx context.Context, page, limit int, search string) ([]device.DeviceResponse, int64, error)
}

func (f *fakeDeviceService) Add(ctx context.Context, req device.AddDeviceRequest) (device.DeviceResponse, error) {
	return f.AddFn(ctx, req)
}
func (f *fakeDeviceService) Update(ctx context.Context, id string, req device.UpdateDeviceRequest) (device.DeviceResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDeviceService) AddImages(ctx context.Context, id string, images []string) (device.DeviceResponse, error) {
	return f.AddImagesFn(ctx, id, images)
}
func (f *fakeDeviceService) AddUnits(ctx context.Context, id string, delta int) (device.DeviceResponse, error) {
	return f.AddUnitsFn(ctx, id, delta)
}
func (f *fakeDeviceService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeDeviceService) GetByID(ctx context.Context, id string) (device.DeviceResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDeviceService) List(ctx context.Context, page, limit int, search string) ([]device.DeviceResponse, int64, error) {
	return f.ListFn(ctx, page, limit, search)
}

func setupRouter(svc device.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pass := func(c *gin.Context) { c.Next() }
	device.RegisterRoutes(r.Group("/api/v1"), device.NewHandler(svc), pass, pass)
	return r
}

func TestDeviceHandler_Add(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeDeviceService{
			AddFn: func(ctx context.Context, req device.AddDeviceRequest) (device.DeviceResponse, error) {
				assert.Equal(t, "ThinkPad T14", req.Model)
				return device.DeviceResponse{ID: uuid.New().String(), Model: req.Model, TotalUnits: req.Units}, nil
			},
		}
		r := setupRouter(svc)

		body := `{"model":"ThinkPad T14","manufacturer":"Lenovo","screenSize":"14","processor":"Ryzen 7","ram":"32GB","storage":"1TB","units":5,"location":"Lagos HQ"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/devices/add", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, http.StatusCreated, env.StatusCode)
		assert.Equal(t, "Device added successfully", env.Message)
	})

	t.Run("duplicate surfaces as 422 with message", func(t *testing.T) {
		svc := &fakeDeviceService{
			AddFn: func(ctx context.Context, req device.AddDeviceRequest) (device.DeviceResponse, error) {
				return device.DeviceResponse{}, deviceerrors.ErrDeviceExists
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/devices/add", strings.NewReader(`{"model":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, deviceerrors.ErrDeviceExists.Message, env.Message)
	})
}

func TestDeviceHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeDeviceService{
			GetByIDFn: func(ctx context.Context, id string) (device.DeviceResponse, error) {
				return device.DeviceResponse{}, deviceerrors.ErrDeviceNotFound
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/get/"+uuid.New().String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeviceHandler_List(t *testing.T) {
	t.Run("pagination defaults and search term pass through", func(t *testing.T) {
		svc := &fakeDeviceService{
			ListFn: func(ctx context.Context, page, limit int, search string) ([]device.DeviceResponse, int64, error) {
				assert.Equal(t, 1, page)
				assert.Equal(t, 10, limit)
				assert.Equal(t, "lenovo", search)
				return []device.DeviceResponse{{ID: uuid.New().String()}}, 23, nil
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/all?searchTerm=lenovo", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.NotNil(t, env.Pagination)
		assert.Equal(t, int64(23), env.Pagination.Total)
		assert.Equal(t, 3, env.Pagination.TotalPages)
	})
}

func TestDeviceHandler_AddUnits(t *testing.T) {
	t.Run("delta reaches the service", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeDeviceService{
			AddUnitsFn: func(ctx context.Context, gotID string, delta int) (device.DeviceResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, -2, delta)
				return device.DeviceResponse{ID: gotID, TotalUnits: 3}, nil
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/devices/"+id+"/units", strings.NewReader(`{"units":-2}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
