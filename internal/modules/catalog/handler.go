package catalog

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
	services := protected.Group("/services")
	{
		services.POST("", h.CreateService)
		services.GET("", h.ListServices)
		services.POST("/:id/parts", h.AddPart)
		services.GET("/:id/parts", h.ListServiceParts)
	}

	parts := protected.Group("/parts")
	{
		parts.POST("", h.CreatePart)
		parts.GET("", h.ListParts)
	}
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Description is required and charge must be >= 0")
		return
	}

	created, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Description is required and charge must be >= 0")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create service")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"service": created})
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Part number, description, quantity and cost are required")
		return
	}

	created, err := h.service.CreatePart(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Part number, description, quantity and cost are required")
		case errors.Is(err, ErrPartNumberExists):
			response.Error(c, http.StatusConflict, "PART_NUMBER_EXISTS", "A part with this part number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create part")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"part": created})
}

func (h *Handler) ListParts(c *gin.Context) {
	parts, err := h.service.ListParts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list parts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parts": parts})
}

func (h *Handler) AddPart(c *gin.Context) {
	serviceID, ok := pathID(c)
	if !ok {
		return
	}

	var req AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Part ID is required and quantity must be >= 1")
		return
	}

	sp, err := h.service.AddPart(c.Request.Context(), serviceID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be >= 1")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		case errors.Is(err, ErrPartNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add part to service")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"service_part": sp})
}

func (h *Handler) ListServiceParts(c *gin.Context) {
	serviceID, ok := pathID(c)
	if !ok {
		return
	}

	parts, err := h.service.ListServiceParts(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list service parts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parts": parts})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return 0, false
	}
	return id, true
}
