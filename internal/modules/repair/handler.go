package repair

import (
	"errors"
	"net/http"
	"strconv"

	"repairshop/internal/domain"
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
	repairs := protected.Group("/repairs")
	{
		repairs.POST("", h.CreateRepair)
		repairs.GET("", h.ListRepairs)
		repairs.GET("/:id", h.GetRepair)
		repairs.PATCH("/:id/status", h.UpdateStatus)
		repairs.POST("/:id/services", h.AddService)
		repairs.GET("/:id/services", h.ListServices)
	}
}

func (h *Handler) CreateRepair(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Customer, device and problem description are required")
		return
	}

	created, err := h.service.CreateRepair(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Problem description is required")
		case errors.Is(err, ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		case errors.Is(err, ErrDeviceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device not found")
		case errors.Is(err, ErrReferenceExhausted):
			response.Error(c, http.StatusConflict, "REFERENCE_CONFLICT", "Could not allocate a unique reference number")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create repair")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"repair": created})
}

func (h *Handler) ListRepairs(c *gin.Context) {
	repairs, err := h.service.ListRepairs(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list repairs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"repairs": repairs})
}

func (h *Handler) GetRepair(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.service.GetRepair(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repair not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load repair")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"repair": found})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be one of: pending, in_progress, completed")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, domain.RepairStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be one of: pending, in_progress, completed")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repair not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update repair status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"repair": updated})
}

func (h *Handler) AddService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service ID is required")
		return
	}

	performed, err := h.service.AddService(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repair not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to record service")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"repair_service": performed})
}

func (h *Handler) ListServices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	services, err := h.service.ListServices(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repair not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid repair ID")
		return 0, false
	}
	return id, true
}
