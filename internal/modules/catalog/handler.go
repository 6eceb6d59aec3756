package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"grandstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public browse endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/services", h.ListServices)
}

// RegisterAdminRoutes mounts the staff catalog management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
	rg.POST("/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room data")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Room added successfully!", "room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room data")
		return
	}

	if err := h.service.UpdateRoom(c.Request.Context(), id, req); err != nil {
		writeUpdateError(c, err, "room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Room updated successfully!"})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		writeUpdateError(c, err, "room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Room deleted successfully!"})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service data")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Service added successfully!", "service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service data")
		return
	}

	if err := h.service.UpdateService(c.Request.Context(), id, req); err != nil {
		writeUpdateError(c, err, "service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service updated successfully!"})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		writeUpdateError(c, err, "service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service deleted successfully!"})
}

func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid ID is required")
		return 0, false
	}
	return id, true
}

func writeUpdateError(c *gin.Context, err error, label string) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "The requested "+label+" was not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update "+label)
}
