package postgres

import (
	"context"

	"github.com/dom/community-portal/internal/domain"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *appointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) ListByOwner(ctx context.Context, userID uint) ([]*domain.Appointment, error) {
	var appointments []*domain.Appointment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
