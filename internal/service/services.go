package service

import (
	"github.com/dom/community-portal/internal/repository"
)

type Services struct {
	Auth         *AuthService
	Appointments *AppointmentService
	Reviews      *ReviewService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User),
		Appointments: NewAppointmentService(repos.Appointment),
		Reviews:      NewReviewService(repos.Review),
	}
}
