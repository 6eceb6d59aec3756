package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationRated     ReservationStatus = "Rated"
)

// ReservationKind selects the room or service reservation family. The two
// families share one shape but live in separate tables.
type ReservationKind string

const (
	KindRoom    ReservationKind = "room"
	KindService ReservationKind = "service"
)

// DefaultNotes is stored when a reservation is submitted without notes.
const DefaultNotes = "No instructions added by the client."

// CanTransitionTo reports whether a reservation in status s may move to next.
// Cancelled and Rated are terminal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch next {
	case ReservationConfirmed:
		return s == ReservationPending
	case ReservationCancelled:
		return s == ReservationPending || s == ReservationConfirmed
	case ReservationCompleted:
		return s == ReservationConfirmed
	case ReservationRated:
		return s == ReservationCompleted
	default:
		return false
	}
}

type Reservation struct {
	ID     int64           `json:"id"`
	Kind   ReservationKind `json:"-"`
	UserID int64           `json:"user_id" validate:"required"`
	// TargetID is the booked room or service, depending on Kind.
	TargetID     int64  `json:"target_id" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required"`
	ContactPhone string `json:"contact_phone" validate:"required"`

	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	// TotalHours is derived from the window at creation and stored
	// redundantly, matching the legacy schema.
	TotalHours int64 `json:"total_hours"`

	Status             ReservationStatus `json:"status"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
	AdditionalNotes    string            `json:"additional_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationDetails is the staff list/detail view: the reservation joined
// with its catalog target and the requester's live profile. Contact fields on
// the reservation itself stay as booked-time snapshots.
type ReservationDetails struct {
	Reservation

	TargetName        string  `json:"target_name"`
	TargetDescription string  `json:"target_description"`
	TargetPrice       float64 `json:"target_price"`

	UserFullName string `json:"user_full_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	UserPhone    string `json:"user_phone,omitempty"`
}
