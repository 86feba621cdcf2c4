package customer

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
	customers := protected.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/repairs", h.ListRepairs)
	}
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and phone are required")
		return
	}

	created, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and phone are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create customer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"customer": created})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list customers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load customer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": found})
}

func (h *Handler) ListRepairs(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	repairs, err := h.service.ListRepairs(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
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
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return 0, false
	}
	return id, true
}
