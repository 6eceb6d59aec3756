package reservation

import (
	"context"
	"errors"
	"time"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

// Service enforces the reservation state machine:
// Pending -> Confirmed -> Completed -> Rated, with Cancelled reachable from
// Pending or Confirmed. Rated and Cancelled are terminal. Every transition is
// re-checked by a guarded UPDATE, so two racing transitions cannot both win.
type Service struct {
	kind         domain.ReservationKind
	reservations ReservationRepository
	events       EventSink
}

func NewService(kind domain.ReservationKind, reservations ReservationRepository, events EventSink) *Service {
	return &Service{kind: kind, reservations: reservations, events: events}
}

func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.EndTime.Before(req.StartTime) || req.EndTime.Equal(req.StartTime) {
		return nil, ErrValidation
	}

	notes := req.Notes
	if notes == "" {
		notes = domain.DefaultNotes
	}

	now := time.Now()
	res := &domain.Reservation{
		Kind:            s.kind,
		UserID:          req.UserID,
		TargetID:        req.TargetID,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		TotalHours:      int64(req.EndTime.Sub(req.StartTime) / time.Hour),
		Status:          domain.ReservationPending,
		AdditionalNotes: notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.NotifyReservationCreated(ctx, s.kind, res.ID, res.UserID)
	}
	return res, nil
}

func (s *Service) Confirm(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.ReservationConfirmed, "", domain.ReservationPending)
}

func (s *Service) Complete(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.ReservationCompleted, "", domain.ReservationConfirmed)
}

// Cancel is the guest path; no reason is recorded.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.ReservationCancelled, "",
		domain.ReservationPending, domain.ReservationConfirmed)
}

// CancelWithReason is the staff path; the reason is mandatory and stored on
// the reservation.
func (s *Service) CancelWithReason(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		return ErrValidation
	}
	return s.transition(ctx, id, domain.ReservationCancelled, reason,
		domain.ReservationPending, domain.ReservationConfirmed)
}

func (s *Service) transition(ctx context.Context, id int64, next domain.ReservationStatus, reason string, allowedPrev ...domain.ReservationStatus) error {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !res.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	var affected int64
	if next == domain.ReservationCancelled && reason != "" {
		affected, err = s.reservations.CancelWithReason(ctx, id, reason, allowedPrev...)
	} else {
		affected, err = s.reservations.UpdateStatusFrom(ctx, id, next, allowedPrev...)
	}
	if err != nil {
		return err
	}
	// The row was readable a moment ago, so zero rows means a concurrent
	// transition won the race.
	if affected == 0 {
		return ErrInvalidStatusTransition
	}

	if s.events != nil {
		_ = s.events.NotifyStatusChanged(ctx, s.kind, id, res.UserID, next, reason)
	}
	return nil
}

// Rate inserts the rating and moves the reservation Completed -> Rated in one
// atomic unit; if the status flip loses a race the rating insert rolls back.
func (s *Service) Rate(ctx context.Context, reservationID int64, req RateReservationRequest) (*domain.Rating, error) {
	if req.StarCount < 1 || req.StarCount > 5 {
		return nil, ErrValidation
	}

	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !res.Status.CanTransitionTo(domain.ReservationRated) {
		return nil, ErrInvalidStatusTransition
	}

	rating := &domain.Rating{
		Kind:          s.kind,
		ReservationID: reservationID,
		TargetID:      req.TargetID,
		UserID:        req.UserID,
		StarCount:     req.StarCount,
		Comment:       req.Comment,
	}

	_, err = s.reservations.Rate(ctx, rating, domain.ReservationCompleted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}

	if s.events != nil {
		_ = s.events.NotifyStatusChanged(ctx, s.kind, reservationID, res.UserID, domain.ReservationRated, "")
	}
	return rating, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.reservations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
