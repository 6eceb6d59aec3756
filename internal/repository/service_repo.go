package repository

import (
	"context"
	"time"

	"grandstay/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Duration    *string   `gorm:"column:duration"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	var desc, dur string
	if m.Description != nil {
		desc = *m.Description
	}
	if m.Duration != nil {
		dur = *m.Duration
	}
	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: desc,
		Price:       m.Price,
		Duration:    dur,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	var desc, dur *string
	if s.Description != "" {
		v := s.Description
		desc = &v
	}
	if s.Duration != "" {
		v := s.Duration
		dur = &v
	}
	return serviceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: desc,
		Price:       s.Price,
		Duration:    dur,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *ServiceRepository) Migrate() error {
	return r.db.AutoMigrate(&serviceModel{})
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	m := toServiceModel(svc)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*svc = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) (int64, error) {
	m := toServiceModel(svc)
	tx := r.db.WithContext(ctx).Model(&serviceModel{}).Where("id = ?", svc.ID).
		Updates(map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"price":       m.Price,
			"duration":    m.Duration,
			"updated_at":  time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceModel
	tx := r.db.WithContext(ctx).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&serviceModel{}, id)
	return tx.RowsAffected, tx.Error
}
