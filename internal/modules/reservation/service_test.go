package reservation

import (
	"context"
	"testing"
	"time"

	"grandstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	if res != nil {
		res.ID = 777 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListAllWithDetails(ctx context.Context) ([]domain.ReservationDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationDetails), args.Error(1)
}

func (m *MockReservationRepository) GetDetails(ctx context.Context, id int64) (*domain.ReservationDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetails), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatusFrom(ctx context.Context, id int64, next domain.ReservationStatus, allowedPrev ...domain.ReservationStatus) (int64, error) {
	args := m.Called(ctx, id, next, allowedPrev)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) CancelWithReason(ctx context.Context, id int64, reason string, allowedPrev ...domain.ReservationStatus) (int64, error) {
	args := m.Called(ctx, id, reason, allowedPrev)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) Rate(ctx context.Context, rating *domain.Rating, allowedPrev ...domain.ReservationStatus) (int64, error) {
	args := m.Called(ctx, rating, allowedPrev)
	if rating != nil && args.Error(1) == nil {
		rating.ID = 42
	}
	return args.Get(0).(int64), args.Error(1)
}

func validCreateRequest() CreateReservationRequest {
	return CreateReservationRequest{
		UserID:       3,
		TargetID:     10,
		ContactName:  "Ava Reyes",
		ContactEmail: "ava@example.com",
		ContactPhone: "+15550001111",
		StartTime:    time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(domain.KindRoom, repo, nil)
	res, err := svc.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, res)
	// 14:00 -> next day 10:00 is exactly 20 hours
	assert.Equal(t, int64(20), res.TotalHours)
	assert.Equal(t, domain.ReservationPending, res.Status)
	assert.Equal(t, domain.DefaultNotes, res.AdditionalNotes)
	repo.AssertExpectations(t)
}

func TestService_Create_FlooredHours(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest()
	req.EndTime = req.StartTime.Add(2*time.Hour + 45*time.Minute)

	svc := NewService(domain.KindRoom, repo, nil)
	res, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalHours)
}

func TestService_Create_KeepsCustomNotes(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest()
	req.Notes = "Late arrival, around midnight"

	svc := NewService(domain.KindRoom, repo, nil)
	res, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Late arrival, around midnight", res.AdditionalNotes)
}

func TestService_Create_RejectsInvertedWindow(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := NewService(domain.KindRoom, repo, nil)

	req := validCreateRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_RejectsEmptyWindow(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := NewService(domain.KindRoom, repo, nil)

	req := validCreateRequest()
	req.EndTime = req.StartTime

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Confirm_Pending(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationPending}, nil)
	repo.On("UpdateStatusFrom", mock.Anything, int64(1), domain.ReservationConfirmed,
		[]domain.ReservationStatus{domain.ReservationPending}).Return(int64(1), nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Confirm(context.Background(), 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Confirm_NotFound(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Confirm(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "UpdateStatusFrom")
}

func TestService_Confirm_AfterCancel_Conflict(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationCancelled}, nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Confirm(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	repo.AssertNotCalled(t, "UpdateStatusFrom")
}

// The legacy system let a second cancel overwrite the status silently; the
// state machine now rejects it, since Cancelled is terminal.
func TestService_Cancel_Twice_Conflict(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationCancelled}, nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Cancel_RaceLostToConcurrentTransition(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationPending}, nil)
	// Another transition won between the read and the guarded update.
	repo.On("UpdateStatusFrom", mock.Anything, int64(1), domain.ReservationCancelled,
		[]domain.ReservationStatus{domain.ReservationPending, domain.ReservationConfirmed}).
		Return(int64(0), nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_CancelWithReason_RequiresReason(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := NewService(domain.KindRoom, repo, nil)

	err := svc.CancelWithReason(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "CancelWithReason")
}

func TestService_CancelWithReason_StoresReason(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationPending}, nil)
	repo.On("CancelWithReason", mock.Anything, int64(1), "Fully Booked",
		[]domain.ReservationStatus{domain.ReservationPending, domain.ReservationConfirmed}).
		Return(int64(1), nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.CancelWithReason(context.Background(), 1, "Fully Booked")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Complete_RequiresConfirmed(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationPending}, nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Complete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Rate_StarBounds(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := NewService(domain.KindRoom, repo, nil)

	for _, stars := range []int{0, 6} {
		_, err := svc.Rate(context.Background(), 1, RateReservationRequest{
			TargetID: 10, UserID: 3, StarCount: stars,
		})
		assert.ErrorIs(t, err, ErrValidation, "stars=%d", stars)
	}
	repo.AssertNotCalled(t, "Rate")
}

func TestService_Rate_AcceptsBoundaryStars(t *testing.T) {
	for _, stars := range []int{1, 5} {
		repo := new(MockReservationRepository)
		repo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Reservation{ID: 1, UserID: 3, Status: domain.ReservationCompleted}, nil)
		repo.On("Rate", mock.Anything, mock.Anything,
			[]domain.ReservationStatus{domain.ReservationCompleted}).Return(int64(1), nil)

		svc := NewService(domain.KindRoom, repo, nil)
		rating, err := svc.Rate(context.Background(), 1, RateReservationRequest{
			TargetID: 10, UserID: 3, StarCount: stars, Comment: "Great stay",
		})

		assert.NoError(t, err, "stars=%d", stars)
		assert.Equal(t, stars, rating.StarCount)
		repo.AssertExpectations(t)
	}
}

func TestService_Rate_NotFound(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(domain.KindRoom, repo, nil)
	_, err := svc.Rate(context.Background(), 99, RateReservationRequest{
		TargetID: 10, UserID: 3, StarCount: 4,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Rate")
}

func TestService_Rate_OnPending_Conflict(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationPending}, nil)

	svc := NewService(domain.KindRoom, repo, nil)
	_, err := svc.Rate(context.Background(), 1, RateReservationRequest{
		TargetID: 10, UserID: 3, StarCount: 4,
	})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	repo.AssertNotCalled(t, "Rate")
}

func TestService_Rate_RolledBackWhenReservationVanishes(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Reservation{ID: 1, Status: domain.ReservationCompleted}, nil)
	repo.On("Rate", mock.Anything, mock.Anything,
		[]domain.ReservationStatus{domain.ReservationCompleted}).
		Return(int64(0), gorm.ErrRecordNotFound)

	svc := NewService(domain.KindRoom, repo, nil)
	_, err := svc.Rate(context.Background(), 1, RateReservationRequest{
		TargetID: 10, UserID: 3, StarCount: 4,
	})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Delete", mock.Anything, int64(99)).Return(int64(0), nil)

	svc := NewService(domain.KindRoom, repo, nil)
	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
