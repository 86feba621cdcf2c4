package dashboard

import (
	"net/http"

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
	protected.GET("/dashboard", h.GetDashboard)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to load dashboard statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
