package domain

import "time"

// Service is a bookable on-site service (spa, dining, events and the like),
// the second reservation target family next to rooms.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	// Duration is the advertised session length, free-form ("2 hours").
	Duration  string    `json:"duration,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
