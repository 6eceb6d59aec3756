package analytics

import (
	"context"
	"sort"

	"grandstay/internal/repository"
)

type CheckinSource interface {
	RoomCheckins(ctx context.Context) ([]repository.CheckinRow, error)
}

// MonthlyCheckins is one analytics bucket: check-in count per month and room
// type across reservations that were at least confirmed.
type MonthlyCheckins struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	RoomType string `json:"room_type"`
	Checkins int    `json:"checkins"`
}

type Service struct {
	checkins CheckinSource
}

func NewService(checkins CheckinSource) *Service {
	return &Service{checkins: checkins}
}

// CheckinsByMonth buckets check-ins in Go rather than SQL so the query works
// unchanged on postgres and sqlite.
func (s *Service) CheckinsByMonth(ctx context.Context) ([]MonthlyCheckins, error) {
	rows, err := s.checkins.RoomCheckins(ctx)
	if err != nil {
		return nil, err
	}

	type key struct {
		year     int
		month    int
		roomType string
	}
	counts := make(map[key]int)
	for _, r := range rows {
		counts[key{r.StartTime.Year(), int(r.StartTime.Month()), r.RoomType}]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return keys[i].roomType < keys[j].roomType
	})

	out := make([]MonthlyCheckins, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthlyCheckins{
			Month:    monthName(k.month),
			Year:     k.year,
			RoomType: k.roomType,
			Checkins: counts[k],
		})
	}
	return out, nil
}

func monthName(m int) string {
	names := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	if m < 1 || m > 12 {
		return ""
	}
	return names[m-1]
}
