package repository

import (
	"context"
	"strings"
	"time"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

// ReservationRepository is scoped to one reservation kind at construction;
// the room and service families share the row shape but live in parallel
// tables.
type ReservationRepository struct {
	db          *gorm.DB
	kind        domain.ReservationKind
	table       string
	ratingTable string
	targetTable string
}

func NewReservationRepository(db *gorm.DB, kind domain.ReservationKind) *ReservationRepository {
	r := &ReservationRepository{db: db, kind: kind}
	switch kind {
	case domain.KindService:
		r.table = "service_reservations"
		r.ratingTable = "service_user_ratings"
		r.targetTable = "services"
	default:
		r.table = "room_reservations"
		r.ratingTable = "room_user_ratings"
		r.targetTable = "rooms"
	}
	return r
}

type ReservationRow struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	UserID             int64      `gorm:"column:user_id"`
	TargetID           int64      `gorm:"column:target_id"`
	ContactName        string     `gorm:"column:contact_name"`
	ContactEmail       string     `gorm:"column:contact_email"`
	ContactPhone       string     `gorm:"column:contact_phone"`
	StartTime          time.Time  `gorm:"column:start_time"`
	EndTime            time.Time  `gorm:"column:end_time"`
	TotalHours         int64      `gorm:"column:total_hours"`
	Status             string     `gorm:"column:status"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	AdditionalNotes    string     `gorm:"column:additional_notes"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

type ratingRow struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ReservationID int64     `gorm:"column:reservation_id"`
	TargetID      int64     `gorm:"column:target_id"`
	UserID        int64     `gorm:"column:user_id"`
	StarCount     int       `gorm:"column:star_count"`
	Comment       *string   `gorm:"column:comment"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (r *ReservationRepository) toDomain(m ReservationRow) *domain.Reservation {
	var reason string
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Reservation{
		ID:                 m.ID,
		Kind:               r.kind,
		UserID:             m.UserID,
		TargetID:           m.TargetID,
		ContactName:        m.ContactName,
		ContactEmail:       m.ContactEmail,
		ContactPhone:       m.ContactPhone,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		TotalHours:         m.TotalHours,
		Status:             domain.ReservationStatus(m.Status),
		CancellationReason: reason,
		AdditionalNotes:    m.AdditionalNotes,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toReservationRow(res *domain.Reservation) ReservationRow {
	var reason *string
	if res.CancellationReason != "" {
		v := res.CancellationReason
		reason = &v
	}

	return ReservationRow{
		ID:                 res.ID,
		UserID:             res.UserID,
		TargetID:           res.TargetID,
		ContactName:        res.ContactName,
		ContactEmail:       res.ContactEmail,
		ContactPhone:       res.ContactPhone,
		StartTime:          res.StartTime,
		EndTime:            res.EndTime,
		TotalHours:         res.TotalHours,
		Status:             string(res.Status),
		CancellationReason: reason,
		AdditionalNotes:    res.AdditionalNotes,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
}

// Migrate creates the reservation and rating tables for this kind.
func (r *ReservationRepository) Migrate() error {
	if err := r.db.Table(r.table).AutoMigrate(&ReservationRow{}); err != nil {
		return err
	}
	return r.db.Table(r.ratingTable).AutoMigrate(&ratingRow{})
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationRow(res)
	tx := r.db.WithContext(ctx).Table(r.table).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *r.toDomain(m)
	res.Kind = r.kind
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m ReservationRow
	tx := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.toDomain(m), nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var rows []ReservationRow
	tx := r.db.WithContext(ctx).Table(r.table).Where("user_id = ?", userID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *r.toDomain(m))
	}
	return out, nil
}

// detailsRow carries the join columns next to the reservation fields; the
// requester name parts are concatenated in Go to stay portable across
// postgres and sqlite.
type detailsRow struct {
	ReservationRow
	TargetName        string  `gorm:"column:target_name"`
	TargetDescription *string `gorm:"column:target_description"`
	TargetPrice       float64 `gorm:"column:target_price"`
	UserFirstName     *string `gorm:"column:user_first_name"`
	UserMiddleName    *string `gorm:"column:user_middle_name"`
	UserLastName      *string `gorm:"column:user_last_name"`
	UserEmail         *string `gorm:"column:user_email"`
	UserPhone         *string `gorm:"column:user_phone"`
}

func (r *ReservationRepository) toDetails(m detailsRow) domain.ReservationDetails {
	d := domain.ReservationDetails{Reservation: *r.toDomain(m.ReservationRow)}
	d.TargetName = m.TargetName
	if m.TargetDescription != nil {
		d.TargetDescription = *m.TargetDescription
	}
	d.TargetPrice = m.TargetPrice

	parts := make([]string, 0, 3)
	for _, p := range []*string{m.UserFirstName, m.UserMiddleName, m.UserLastName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	d.UserFullName = strings.Join(parts, " ")
	if m.UserEmail != nil {
		d.UserEmail = *m.UserEmail
	}
	if m.UserPhone != nil {
		d.UserPhone = *m.UserPhone
	}
	return d
}

// ListAllWithDetails is the staff view: every reservation joined with its
// catalog target and the requester profile, newest first.
func (r *ReservationRepository) ListAllWithDetails(ctx context.Context) ([]domain.ReservationDetails, error) {
	var rows []detailsRow
	q := `
SELECT rr.*,
       t.name AS target_name,
       t.description AS target_description,
       t.price AS target_price,
       u.first_name AS user_first_name,
       u.middle_name AS user_middle_name,
       u.last_name AS user_last_name,
       u.email AS user_email,
       u.phone AS user_phone
FROM ` + r.table + ` rr
JOIN ` + r.targetTable + ` t ON rr.target_id = t.id
JOIN users u ON rr.user_id = u.id
ORDER BY rr.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ReservationDetails, 0, len(rows))
	for _, m := range rows {
		out = append(out, r.toDetails(m))
	}
	return out, nil
}

// GetDetails returns one reservation joined with its catalog target.
func (r *ReservationRepository) GetDetails(ctx context.Context, id int64) (*domain.ReservationDetails, error) {
	var m detailsRow
	q := `
SELECT rr.*,
       t.name AS target_name,
       t.description AS target_description,
       t.price AS target_price
FROM ` + r.table + ` rr
JOIN ` + r.targetTable + ` t ON rr.target_id = t.id
WHERE rr.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, id).Scan(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	d := r.toDetails(m)
	return &d, nil
}

// UpdateStatusFrom applies a guarded single-statement transition: the status
// flips to next only if the current value is one of allowedPrev. Returns the
// number of rows affected; 0 means the id is absent or the guard failed.
func (r *ReservationRepository) UpdateStatusFrom(ctx context.Context, id int64, next domain.ReservationStatus, allowedPrev ...domain.ReservationStatus) (int64, error) {
	tx := r.db.WithContext(ctx).Table(r.table).
		Where("id = ? AND status IN ?", id, statusStrings(allowedPrev)).
		Updates(map[string]interface{}{
			"status":     string(next),
			"updated_at": time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

// CancelWithReason is the staff cancel path; the guest path leaves the reason
// empty.
func (r *ReservationRepository) CancelWithReason(ctx context.Context, id int64, reason string, allowedPrev ...domain.ReservationStatus) (int64, error) {
	tx := r.db.WithContext(ctx).Table(r.table).
		Where("id = ? AND status IN ?", id, statusStrings(allowedPrev)).
		Updates(map[string]interface{}{
			"status":              string(domain.ReservationCancelled),
			"cancellation_reason": reason,
			"updated_at":          time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Delete(&ReservationRow{})
	return tx.RowsAffected, tx.Error
}

// Rate inserts the rating and flips the reservation to Rated in one
// transaction. If the guarded status update touches zero rows the whole unit
// rolls back, so a rating never exists for a reservation that did not
// actually transition.
func (r *ReservationRepository) Rate(ctx context.Context, rating *domain.Rating, allowedPrev ...domain.ReservationStatus) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment *string
		if rating.Comment != "" {
			v := rating.Comment
			comment = &v
		}
		row := ratingRow{
			ReservationID: rating.ReservationID,
			TargetID:      rating.TargetID,
			UserID:        rating.UserID,
			StarCount:     rating.StarCount,
			Comment:       comment,
			CreatedAt:     time.Now(),
		}
		if err := tx.Table(r.ratingTable).Create(&row).Error; err != nil {
			return err
		}

		res := tx.Table(r.table).
			Where("id = ? AND status IN ?", rating.ReservationID, statusStrings(allowedPrev)).
			Updates(map[string]interface{}{
				"status":     string(domain.ReservationRated),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		affected = res.RowsAffected
		rating.ID = row.ID
		rating.CreatedAt = row.CreatedAt
		rating.Kind = r.kind
		return nil
	})
	return affected, err
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
