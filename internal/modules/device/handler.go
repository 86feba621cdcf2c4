package device

import (
	"errors"
	"net/http"
	"strconv"

	"repairshop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	devices := protected.Group("/devices")
	{
		devices.POST("", h.CreateDevice)
		devices.GET("", h.ListDevices)
		devices.GET("/:id", h.GetDevice)
		devices.GET("/:id/repairs", h.ListRepairs)
	}
}

func (h *Handler) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Device type, model and serial number are required")
		return
	}

	created, err := h.service.CreateDevice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Device type, model and serial number are required")
		case errors.Is(err, ErrSerialNumberExists):
			response.Error(c, http.StatusConflict, "SERIAL_NUMBER_EXISTS", "A device with this serial number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create device")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"device": created})
}

func (h *Handler) ListDevices(c *gin.Context) {
	devices, err := h.service.ListDevices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list devices")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"devices": devices})
}

func (h *Handler) GetDevice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.service.GetDevice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load device")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"device": found})
}

func (h *Handler) ListRepairs(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	repairs, err := h.service.ListRepairs(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list repairs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"repairs": repairs})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid device ID")
		return 0, false
	}
	return id, true
}
