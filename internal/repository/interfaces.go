package repository

import (
	"context"

	"github.com/dom/community-portal/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	ListByOwner(ctx context.Context, userID uint) ([]*domain.Appointment, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListAll(ctx context.Context) ([]*domain.Review, error)
}

type Repositories struct {
	User        UserRepository
	Appointment AppointmentRepository
	Review      ReviewRepository
}
