package domain

import "time"

type RoomType string

const (
	RoomStandard  RoomType = "Standard"
	RoomDeluxe    RoomType = "Deluxe"
	RoomSuite     RoomType = "Suite"
	RoomExecutive RoomType = "Executive"
)

type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	RoomNumber  string    `json:"room_number" validate:"required"`
	RoomType    RoomType  `json:"room_type" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	HourlyRate  float64   `json:"hourly_rate" validate:"required,gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
