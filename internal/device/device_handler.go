package device

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assetdesk/internal/shared/apperror"
	"assetdesk/internal/shared/pagination"
	"assetdesk/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("device.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("device.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("device request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Device added successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("deviceId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Device update was successful", resp)
}

func (h *Handler) AddImages(c *gin.Context) {
	var req AddImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.AddImages(c.Request.Context(), c.Param("deviceId"), req.Images)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Device images added successfully", resp)
}

func (h *Handler) AddUnits(c *gin.Context) {
	var req AddUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.AddUnits(c.Request.Context(), c.Param("deviceId"), req.Units)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Device units update was successful", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("deviceId")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Device deleted successfully", nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("deviceId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Device fetch was successful", resp)
}

func (h *Handler) List(c *gin.Context) {
	p := pagination.FromQuery(c)
	search := strings.TrimSpace(c.Query("searchTerm"))

	devices, total, err := h.service.List(c.Request.Context(), p.Page, p.Limit, search)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessPage(c, http.StatusOK, "Devices fetch was successful", devices,
		response.NewPagination(total, p.Page, p.Limit))
}
