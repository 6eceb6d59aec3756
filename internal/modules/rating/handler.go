package rating

import (
	"context"
	"net/http"

	"grandstay/internal/domain"
	"grandstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type RatingReader interface {
	ListWithRaterNames(ctx context.Context) ([]domain.RatingWithRater, error)
}

// Handler serves the feedback views: all ratings of one kind joined with the
// rater's display name.
type Handler struct {
	roomRatings    RatingReader
	serviceRatings RatingReader
}

func NewHandler(roomRatings, serviceRatings RatingReader) *Handler {
	return &Handler{roomRatings: roomRatings, serviceRatings: serviceRatings}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/room-user-ratings", h.ListRoomRatings)
	rg.GET("/service-user-ratings", h.ListServiceRatings)
}

func (h *Handler) ListRoomRatings(c *gin.Context) {
	h.list(c, h.roomRatings, "room")
}

func (h *Handler) ListServiceRatings(c *gin.Context) {
	h.list(c, h.serviceRatings, "service")
}

func (h *Handler) list(c *gin.Context, reader RatingReader, label string) {
	items, err := reader.ListWithRaterNames(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Error fetching "+label+" ratings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ratings": items})
}
