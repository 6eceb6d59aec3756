package repository

import (
	"context"
	"strings"
	"time"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

// RatingRepository is the read side of the rating subrecords; inserts happen
// inside ReservationRepository.Rate so they share the reservation's
// transaction.
type RatingRepository struct {
	db    *gorm.DB
	table string
}

func NewRatingRepository(db *gorm.DB, kind domain.ReservationKind) *RatingRepository {
	table := "room_user_ratings"
	if kind == domain.KindService {
		table = "service_user_ratings"
	}
	return &RatingRepository{db: db, table: table}
}

type ratingWithRaterRow struct {
	ID            int64     `gorm:"column:id"`
	UserFirstName *string   `gorm:"column:user_first_name"`
	UserLastName  *string   `gorm:"column:user_last_name"`
	Comment       *string   `gorm:"column:comment"`
	StarCount     int       `gorm:"column:star_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// ListWithRaterNames joins every rating with the rater's display name. The
// feedback views consume the full set, no pagination.
func (r *RatingRepository) ListWithRaterNames(ctx context.Context) ([]domain.RatingWithRater, error) {
	var rows []ratingWithRaterRow
	q := `
SELECT rt.id,
       u.first_name AS user_first_name,
       u.last_name AS user_last_name,
       rt.comment,
       rt.star_count,
       rt.created_at
FROM ` + r.table + ` rt
JOIN users u ON rt.user_id = u.id
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RatingWithRater, 0, len(rows))
	for _, m := range rows {
		item := domain.RatingWithRater{
			ID:        m.ID,
			StarCount: m.StarCount,
			CreatedAt: m.CreatedAt,
		}
		parts := make([]string, 0, 2)
		for _, p := range []*string{m.UserFirstName, m.UserLastName} {
			if p != nil && *p != "" {
				parts = append(parts, *p)
			}
		}
		item.UserName = strings.Join(parts, " ")
		if m.Comment != nil {
			item.Comment = *m.Comment
		}
		out = append(out, item)
	}
	return out, nil
}
