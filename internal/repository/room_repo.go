package repository

import (
	"context"
	"time"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	RoomNumber  string    `gorm:"column:room_number"`
	RoomType    string    `gorm:"column:room_type"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	HourlyRate  float64   `gorm:"column:hourly_rate"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return &domain.Room{
		ID:          m.ID,
		Name:        m.Name,
		RoomNumber:  m.RoomNumber,
		RoomType:    domain.RoomType(m.RoomType),
		Description: desc,
		Price:       m.Price,
		HourlyRate:  m.HourlyRate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var desc *string
	if r.Description != "" {
		v := r.Description
		desc = &v
	}
	return roomModel{
		ID:          r.ID,
		Name:        r.Name,
		RoomNumber:  r.RoomNumber,
		RoomType:    string(r.RoomType),
		Description: desc,
		Price:       r.Price,
		HourlyRate:  r.HourlyRate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) Migrate() error {
	return r.db.AutoMigrate(&roomModel{})
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) (int64, error) {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"room_number": m.RoomNumber,
			"room_type":   m.RoomType,
			"description": m.Description,
			"price":       m.Price,
			"hourly_rate": m.HourlyRate,
			"updated_at":  time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rows []roomModel
	tx := r.db.WithContext(ctx).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	return tx.RowsAffected, tx.Error
}
