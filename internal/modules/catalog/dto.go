package catalog

type UpsertRoomRequest struct {
	Name        string  `json:"name" binding:"required"`
	RoomNumber  string  `json:"room_number" binding:"required"`
	RoomType    string  `json:"room_type" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gte=0"`
}

type UpsertServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Duration    string  `json:"duration"`
}
