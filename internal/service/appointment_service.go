package service

import (
	"context"
	"strings"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/repository"
)

type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo}
}

type BookingInput struct {
	Name   string
	Email  string
	Date   string
	Time   string
	Reason string
}

// Book inserts a new appointment for ownerID (nil for anonymous).
// Name, email, date and time are required after trimming; nothing is
// written when validation fails.
func (s *AppointmentService) Book(ctx context.Context, ownerID *uint, input BookingInput) (*domain.Appointment, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	date := strings.TrimSpace(input.Date)
	timeOfDay := strings.TrimSpace(input.Time)
	reason := strings.TrimSpace(input.Reason)

	if name == "" || email == "" || date == "" || timeOfDay == "" {
		return nil, domain.NewValidationError("Please fill all required fields.")
	}

	appointment := &domain.Appointment{
		UserID:   ownerID,
		Name:     name,
		Email:    email,
		ApptDate: date,
		ApptTime: timeOfDay,
		Reason:   reason,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// ListForUser returns the user's own appointments, newest first.
func (s *AppointmentService) ListForUser(ctx context.Context, userID uint) ([]*domain.Appointment, error) {
	return s.appointmentRepo.ListByOwner(ctx, userID)
}
