package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// CheckinRow is one check-in that counts toward the monthly analytics:
// a room reservation that was at least confirmed.
type CheckinRow struct {
	StartTime time.Time `gorm:"column:start_time"`
	RoomType  string    `gorm:"column:room_type"`
}

// RoomCheckins returns the raw check-in rows; bucketing by month happens in
// the analytics service so the query stays portable across postgres and
// sqlite.
func (r *AnalyticsRepository) RoomCheckins(ctx context.Context) ([]CheckinRow, error) {
	var rows []CheckinRow
	q := `
SELECT rr.start_time, t.room_type
FROM room_reservations rr
JOIN rooms t ON rr.target_id = t.id
WHERE rr.status IN ('Confirmed', 'Completed', 'Rated')
ORDER BY rr.start_time
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
