package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"grandstay/internal/domain"
	"grandstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	query   *QueryService
	kind    domain.ReservationKind
	label   string
}

func NewHandler(service *Service, query *QueryService, kind domain.ReservationKind) *Handler {
	label := "Room"
	if kind == domain.KindService {
		label = "Service"
	}
	return &Handler{service: service, query: query, kind: kind, label: label}
}

// RegisterRoutes mounts the guest-facing tree, e.g. /room-reservations.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	prefix := "/" + string(h.kind) + "-reservations"
	rg.POST(prefix, h.Create)
	rg.GET(prefix, h.ListMine)
	rg.GET(prefix+"/:id", h.GetOne)
	rg.PUT(prefix+"/:id/cancel", h.Cancel)
	rg.DELETE(prefix+"/:id", h.Delete)
	rg.POST(prefix+"/:id/rate", h.Rate)
}

// RegisterAdminRoutes mounts the staff transitions under /admin.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	prefix := "/" + string(h.kind) + "-reservations"
	rg.GET(prefix, h.ListAll)
	rg.PUT(prefix+"/:id/confirm", h.Confirm)
	rg.PUT(prefix+"/:id/cancel", h.StaffCancel)
	rg.PUT(prefix+"/:id/complete", h.Complete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"All fields are required except additional notes")
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Reservation window end must be after its start")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to save "+h.label+" reservation")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     h.label + " reservation saved successfully!",
		"reservation": res,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "User ID is required")
		return
	}

	items, err := h.query.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch "+h.label+" reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": items})
}

func (h *Handler) GetOne(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	d, err := h.query.GetOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch reservation details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": d})
}

func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.query.ListAllForStaff(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch "+h.label+" reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": items})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}
	h.applyTransition(c, func() error {
		return h.service.Cancel(c.Request.Context(), id)
	}, h.label+" reservation cancelled successfully!")
}

func (h *Handler) StaffCancel(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req StaffCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Reservation ID and reason are required")
		return
	}

	h.applyTransition(c, func() error {
		return h.service.CancelWithReason(c.Request.Context(), id, req.Reason)
	}, h.label+" reservation cancelled successfully!")
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}
	h.applyTransition(c, func() error {
		return h.service.Confirm(c.Request.Context(), id)
	}, h.label+" reservation confirmed successfully!")
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}
	h.applyTransition(c, func() error {
		return h.service.Complete(c.Request.Context(), id)
	}, h.label+" reservation marked as completed successfully!")
}

func (h *Handler) Rate(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req RateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Target ID, user ID and star count are required")
		return
	}

	_, err := h.service.Rate(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Star count must be between 1 and 5")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "STATUS_CONFLICT",
				"Only completed reservations can be rated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to rate "+h.label+" reservation")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": h.label + " rated successfully!"})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to delete "+h.label+" reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": h.label + " reservation deleted successfully!"})
}

func (h *Handler) applyTransition(c *gin.Context, fn func() error, okMessage string) {
	if err := fn(); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "STATUS_CONFLICT",
				"Reservation status does not allow this transition")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to update "+h.label+" reservation")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": okMessage})
}

func (h *Handler) reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Reservation ID is required")
		return 0, false
	}
	return id, true
}
