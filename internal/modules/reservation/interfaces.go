package reservation

import (
	"context"

	"grandstay/internal/domain"
)

// ReservationRepository defines the storage operations the lifecycle and
// query services need. Satisfied by repository.ReservationRepository.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
	ListAllWithDetails(ctx context.Context) ([]domain.ReservationDetails, error)
	GetDetails(ctx context.Context, id int64) (*domain.ReservationDetails, error)
	UpdateStatusFrom(ctx context.Context, id int64, next domain.ReservationStatus, allowedPrev ...domain.ReservationStatus) (int64, error)
	CancelWithReason(ctx context.Context, id int64, reason string, allowedPrev ...domain.ReservationStatus) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Rate(ctx context.Context, rating *domain.Rating, allowedPrev ...domain.ReservationStatus) (int64, error)
}

// EventSink receives lifecycle events; delivery is best-effort and never
// blocks a transition.
type EventSink interface {
	NotifyReservationCreated(ctx context.Context, kind domain.ReservationKind, id, userID int64) error
	NotifyStatusChanged(ctx context.Context, kind domain.ReservationKind, id, userID int64, status domain.ReservationStatus, reason string) error
}
