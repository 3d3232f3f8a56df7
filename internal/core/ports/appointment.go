package ports

import (
	"context"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// AppointmentRepository persists bookings. List returns newest-created first.
type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// ListAppointmentsInput carries the booking list filter state.
type ListAppointmentsInput struct {
	Search string
	Status string
}

// AppointmentStats are counts over the unfiltered booking list.
type AppointmentStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// ListAppointmentsResult is the filtered bookings plus base stats.
type ListAppointmentsResult struct {
	Items   []domain.Appointment `json:"items"`
	Matched int                  `json:"matched"`
	Stats   AppointmentStats     `json:"stats"`
}

// CreateAppointmentInput carries a new booking request.
type CreateAppointmentInput struct {
	PatientName string
	Date        string
	Time        string
	Reason      string
}

// AppointmentService defines the booking use cases.
type AppointmentService interface {
	ListAppointments(ctx context.Context, in ListAppointmentsInput) (*ListAppointmentsResult, error)
	CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) (*domain.Appointment, error)
}
