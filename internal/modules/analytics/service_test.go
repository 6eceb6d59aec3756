package analytics

import (
	"context"
	"testing"
	"time"

	"grandstay/internal/repository"

	"github.com/stretchr/testify/assert"
)

type stubCheckins struct {
	rows []repository.CheckinRow
}

func (s stubCheckins) RoomCheckins(ctx context.Context) ([]repository.CheckinRow, error) {
	return s.rows, nil
}

func TestService_CheckinsByMonth(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 14, 0, 0, 0, time.UTC)
	}
	svc := NewService(stubCheckins{rows: []repository.CheckinRow{
		{StartTime: day(2024, time.June, 1), RoomType: "Deluxe"},
		{StartTime: day(2024, time.June, 12), RoomType: "Deluxe"},
		{StartTime: day(2024, time.June, 20), RoomType: "Suite"},
		{StartTime: day(2024, time.July, 3), RoomType: "Deluxe"},
		{StartTime: day(2023, time.December, 30), RoomType: "Standard"},
	}})

	buckets, err := svc.CheckinsByMonth(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, []MonthlyCheckins{
		{Month: "December", Year: 2023, RoomType: "Standard", Checkins: 1},
		{Month: "June", Year: 2024, RoomType: "Deluxe", Checkins: 2},
		{Month: "June", Year: 2024, RoomType: "Suite", Checkins: 1},
		{Month: "July", Year: 2024, RoomType: "Deluxe", Checkins: 1},
	}, buckets)
}

func TestService_CheckinsByMonth_Empty(t *testing.T) {
	svc := NewService(stubCheckins{})

	buckets, err := svc.CheckinsByMonth(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, buckets)
}
