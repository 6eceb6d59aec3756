package repository

import (
	"context"
	"testing"
	"time"

	"grandstay/internal/database"
	"grandstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReservationRepo(t *testing.T) (*gorm.DB, *ReservationRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	repo := NewReservationRepository(db, domain.KindRoom)
	require.NoError(t, repo.Migrate())
	require.NoError(t, NewUserRepository(db).Migrate())
	require.NoError(t, NewRoomRepository(db).Migrate())

	return db, repo
}

func seedReservation(t *testing.T, repo *ReservationRepository, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()

	start := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	res := &domain.Reservation{
		UserID:          3,
		TargetID:        10,
		ContactName:     "Ava Reyes",
		ContactEmail:    "ava@example.com",
		ContactPhone:    "+15550001111",
		StartTime:       start,
		EndTime:         start.Add(20 * time.Hour),
		TotalHours:      20,
		Status:          status,
		AdditionalNotes: domain.DefaultNotes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), res))
	return res
}

func countRatings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("room_user_ratings").Count(&n).Error)
	return n
}

func TestReservationRepository_Rate_Atomic(t *testing.T) {
	db, repo := setupReservationRepo(t)
	res := seedReservation(t, repo, domain.ReservationCompleted)

	rating := &domain.Rating{
		ReservationID: res.ID,
		TargetID:      res.TargetID,
		UserID:        res.UserID,
		StarCount:     4,
		Comment:       "Great stay",
	}
	affected, err := repo.Rate(context.Background(), rating, domain.ReservationCompleted)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NotZero(t, rating.ID)
	assert.Equal(t, int64(1), countRatings(t, db))

	got, err := repo.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationRated, got.Status)
}

// A rating must never survive a failed status flip: when the guard matches
// zero rows the whole transaction rolls back.
func TestReservationRepository_Rate_RollsBackOnGuardFailure(t *testing.T) {
	db, repo := setupReservationRepo(t)
	res := seedReservation(t, repo, domain.ReservationPending)

	rating := &domain.Rating{
		ReservationID: res.ID,
		TargetID:      res.TargetID,
		UserID:        res.UserID,
		StarCount:     5,
	}
	_, err := repo.Rate(context.Background(), rating, domain.ReservationCompleted)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, int64(0), countRatings(t, db))

	got, err := repo.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, got.Status)
}

func TestReservationRepository_Rate_MissingReservation(t *testing.T) {
	db, repo := setupReservationRepo(t)

	rating := &domain.Rating{ReservationID: 424242, TargetID: 10, UserID: 3, StarCount: 3}
	_, err := repo.Rate(context.Background(), rating, domain.ReservationCompleted)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, int64(0), countRatings(t, db))
}

func TestReservationRepository_UpdateStatusFrom_Guarded(t *testing.T) {
	_, repo := setupReservationRepo(t)
	res := seedReservation(t, repo, domain.ReservationPending)

	affected, err := repo.UpdateStatusFrom(context.Background(), res.ID,
		domain.ReservationConfirmed, domain.ReservationPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Second identical transition finds no Pending row.
	affected, err = repo.UpdateStatusFrom(context.Background(), res.ID,
		domain.ReservationConfirmed, domain.ReservationPending)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestReservationRepository_CancelWithReason(t *testing.T) {
	_, repo := setupReservationRepo(t)
	res := seedReservation(t, repo, domain.ReservationPending)

	affected, err := repo.CancelWithReason(context.Background(), res.ID, "Fully Booked",
		domain.ReservationPending, domain.ReservationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, got.Status)
	assert.Equal(t, "Fully Booked", got.CancellationReason)
}

func TestReservationRepository_ListByUser(t *testing.T) {
	_, repo := setupReservationRepo(t)
	seedReservation(t, repo, domain.ReservationPending)
	seedReservation(t, repo, domain.ReservationPending)

	mine, err := repo.ListByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other, err := repo.ListByUser(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestReservationRepository_Delete(t *testing.T) {
	_, repo := setupReservationRepo(t)
	res := seedReservation(t, repo, domain.ReservationPending)

	affected, err := repo.Delete(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
