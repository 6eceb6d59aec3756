package reservation

import (
	"context"
	"errors"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

// QueryService is the read side: list and detail views for guests and staff.
type QueryService struct {
	reservations ReservationRepository
}

func NewQueryService(reservations ReservationRepository) *QueryService {
	return &QueryService{reservations: reservations}
}

func (q *QueryService) ListMine(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	return q.reservations.ListByUser(ctx, userID)
}

// ListAllForStaff joins each reservation with its catalog target and the
// requester's live profile, newest first. Contact fields on the reservation
// remain booked-time snapshots.
func (q *QueryService) ListAllForStaff(ctx context.Context) ([]domain.ReservationDetails, error) {
	return q.reservations.ListAllWithDetails(ctx)
}

func (q *QueryService) GetOne(ctx context.Context, id int64) (*domain.ReservationDetails, error) {
	d, err := q.reservations.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}
