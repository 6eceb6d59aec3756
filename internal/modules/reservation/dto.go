package reservation

import "time"

type CreateReservationRequest struct {
	UserID       int64     `json:"user_id" binding:"required"`
	TargetID     int64     `json:"target_id" binding:"required"`
	ContactName  string    `json:"contact_name" binding:"required"`
	ContactEmail string    `json:"contact_email" binding:"required,email"`
	ContactPhone string    `json:"contact_phone" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Notes        string    `json:"additional_notes"`
}

type RateReservationRequest struct {
	TargetID  int64  `json:"target_id" binding:"required"`
	UserID    int64  `json:"user_id" binding:"required"`
	StarCount int    `json:"star_count" binding:"required"`
	Comment   string `json:"comment"`
}

type StaffCancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}
