package domain

import "time"

// Rating is the one-per-reservation review a guest leaves after a completed
// stay or service. It is inserted in the same transaction that moves the
// reservation to Rated.
type Rating struct {
	ID            int64           `json:"id"`
	Kind          ReservationKind `json:"-"`
	ReservationID int64           `json:"reservation_id" validate:"required"`
	TargetID      int64           `json:"target_id" validate:"required"`
	UserID        int64           `json:"user_id" validate:"required"`
	StarCount     int             `json:"star_count" validate:"required,gte=1,lte=5"`
	Comment       string          `json:"comment,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RatingWithRater is the feedback-view row: a rating joined with the rater's
// display name at read time.
type RatingWithRater struct {
	ID        int64     `json:"rating_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `json:"comment,omitempty"`
	StarCount int       `json:"star_count"`
	CreatedAt time.Time `json:"created_at"`
}
