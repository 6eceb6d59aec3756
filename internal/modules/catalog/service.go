package catalog

import (
	"context"
	"errors"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) (int64, error)
	List(ctx context.Context) ([]domain.Room, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	Update(ctx context.Context, svc *domain.Service) (int64, error)
	List(ctx context.Context) ([]domain.Service, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service manages the room and service catalogs staff maintain and guests
// browse.
type Service struct {
	rooms    RoomRepository
	services ServiceRepository
}

func NewService(rooms RoomRepository, services ServiceRepository) *Service {
	return &Service{rooms: rooms, services: services}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, req UpsertRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		RoomType:    domain.RoomType(req.RoomType),
		Description: req.Description,
		Price:       req.Price,
		HourlyRate:  req.HourlyRate,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpsertRoomRequest) error {
	room := &domain.Room{
		ID:          id,
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		RoomType:    domain.RoomType(req.RoomType),
		Description: req.Description,
		Price:       req.Price,
		HourlyRate:  req.HourlyRate,
	}
	affected, err := s.rooms.Update(ctx, room)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	affected, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) CreateService(ctx context.Context, req UpsertServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpsertServiceRequest) error {
	svc := &domain.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}
	affected, err := s.services.Update(ctx, svc)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	affected, err := s.services.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
