package analytics

import (
	"net/http"

	"grandstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/room-checkins", h.RoomCheckins)
}

func (h *Handler) RoomCheckins(c *gin.Context) {
	buckets, err := h.service.CheckinsByMonth(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch room check-ins")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"checkins": buckets})
}
